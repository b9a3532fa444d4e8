package cli

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/llehouerou/carfilter/internal/errmsg"
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/filterstore"
)

var (
	errUnknownTag     = errors.New("unknown tag")
	errUnknownOption  = errors.New("unknown option")
	errNotReplaceable = errors.New("only carType and region can be set")
)

// mutate applies change to the saved selection and prints the result.
func mutate(cmd *cobra.Command, r *runner, change func(*filterstore.Store)) error {
	store, adapter := r.store()
	change(store)
	if store.Degraded() {
		return failed(errmsg.OpFiltersSave, errNotSaved)
	}
	return printText(cmd.OutOrStdout(), store.Selection(), savedAt(adapter))
}

func resetCmd(r *runner) *cobra.Command {
	var purge bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear every filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()
			if !purge {
				return mutate(cmd, r, (*filterstore.Store).Reset)
			}
			adapter := filterstore.NewStorageAdapter(r.kv)
			if err := adapter.Clear(); err != nil {
				return failed(errmsg.OpFiltersPurge, err)
			}
			return printText(cmd.OutOrStdout(), filters.Default(), savedAt(adapter))
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "delete the saved record instead of saving an empty selection")
	return cmd
}

func toggleTagCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:       "toggle-tag <tag>",
		Short:     "Add a tag, or remove it when already selected",
		Args:      cobra.ExactArgs(1),
		ValidArgs: filters.TagOptions,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()
			tag := args[0]
			if !slices.Contains(filters.TagOptions, tag) {
				return failedWith(errmsg.OpParseTag, tag, unknown(errUnknownTag, tag, filters.TagOptions))
			}
			return mutate(cmd, r, func(s *filterstore.Store) { s.ToggleTag(tag) })
		},
	}
}

func setPriceCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:       "set-price [bucket]",
		Short:     "Select a price range; without argument the price is cleared",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: filters.PriceBuckets,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()
			bucket := ""
			if len(args) == 1 {
				bucket = args[0]
			}
			if bucket != "" && !filters.IsPriceBucket(bucket) {
				return failedWith(errmsg.OpParsePrice, bucket, unknown(filters.ErrUnknownPrice, bucket, filters.PriceBuckets))
			}
			return mutate(cmd, r, func(s *filterstore.Store) { s.SetPrice(bucket) })
		},
	}
}

func clearCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:       "clear <category>",
		Short:     "Clear one category and keep the others",
		Args:      cobra.ExactArgs(1),
		ValidArgs: filters.CategoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()
			c, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			return mutate(cmd, r, func(s *filterstore.Store) { s.ClearCategory(c) })
		},
	}
}

func setCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "set <carType|region> <value>...",
		Short: "Replace the car types or regions",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()
			c, values, err := parseReplace(args[0], args[1:])
			if err != nil {
				return err
			}
			return mutate(cmd, r, func(s *filterstore.Store) { s.ReplaceCategory(c, values) })
		},
	}
}

func parseCategory(name string) (filters.Category, error) {
	c, err := filters.ParseCategory(name)
	if err != nil {
		return 0, failedWith(errmsg.OpParseCategory, name, unknown(filters.ErrUnknownCategory, name, filters.CategoryNames()))
	}
	return c, nil
}

// parseReplace validates the arguments of set against the option whitelist.
func parseReplace(name string, values []string) (filters.Category, []string, error) {
	c, err := parseCategory(name)
	if err != nil {
		return 0, nil, err
	}
	if c != filters.CarType && c != filters.Region {
		return 0, nil, failedWith(errmsg.OpParseCategory, name, errNotReplaceable)
	}
	options := filters.Options(c)
	for _, v := range values {
		if !slices.Contains(options, v) {
			return 0, nil, failedWith(errmsg.OpParseValue, v, unknown(errUnknownOption, v, options))
		}
	}
	return c, values, nil
}
