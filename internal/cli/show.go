package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/carfilter/internal/errmsg"
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/filterstore"
)

var errUnknownFormat = errors.New("unknown output format")

var outputFormats = []string{"text", "json", "yaml"}

// report is the machine-readable form of show.
type report struct {
	Selection filters.Selection   `json:"selection"         yaml:"selection"`
	Active    filters.ActiveFlags `json:"active"            yaml:"active"`
	SavedAt   *time.Time          `json:"savedAt,omitempty" yaml:"savedAt,omitempty"`
}

func showCmd(r *runner) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved filters and which buttons are active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()

			store, adapter := r.store()
			sel, at := store.Selection(), savedAt(adapter)
			out := cmd.OutOrStdout()

			switch format {
			case "", "text":
				return printText(out, sel, at)
			case "json":
				return printJSON(out, newReport(sel, at))
			case "yaml":
				return printYAML(out, newReport(sel, at))
			}
			return failedWith(errmsg.OpFiltersShow, format, unknown(errUnknownFormat, format, outputFormats))
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func newReport(sel filters.Selection, at time.Time) report {
	rep := report{Selection: sel, Active: filters.Derive(sel)}
	if !at.IsZero() {
		utc := at.UTC()
		rep.SavedAt = &utc
	}
	return rep
}

// savedAt returns the time of the last save, or zero when nothing is stored.
func savedAt(adapter *filterstore.StorageAdapter) time.Time {
	at, err := adapter.SavedAt()
	if err != nil {
		return time.Time{}
	}
	return at
}

func printText(w io.Writer, sel filters.Selection, at time.Time) error {
	flags := filters.Derive(sel)

	var b strings.Builder
	for _, c := range filters.Categories {
		values := sel.Values(c)
		marker := " "
		if flags.Active(c) || (c == filters.Tags && len(values) > 0) {
			marker = "*"
		}
		text := "-"
		if len(values) > 0 {
			text = strings.Join(values, ", ")
		}
		fmt.Fprintf(&b, "%s %-8s %s\n", marker, c, text)
	}
	if at.IsZero() {
		b.WriteString("not saved yet\n")
	} else {
		fmt.Fprintf(&b, "saved %s\n", humanize.Time(at))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func printJSON(w io.Writer, rep report) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rep, "", "  ")
	if err != nil {
		return failed(errmsg.OpFiltersShow, err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func printYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return failed(errmsg.OpFiltersShow, err)
	}
	return enc.Close()
}
