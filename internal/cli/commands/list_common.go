package commands

import (
	"fmt"
	"strconv"

	"github.com/zhar97/solar-om-analytics/internal/cli/client"
	"github.com/zhar97/solar-om-analytics/internal/cli/config"
	"github.com/zhar97/solar-om-analytics/internal/cli/query"
)

// listFlags are the flags shared by the three list commands. Filter
// flags live on the individual commands since the filter key sets
// differ per entity.
type listFlags struct {
	page     int
	pageSize int
	sort     string
	order    string
	detail   string
	verbose  bool
}

func (f *listFlags) register(set flagSet) {
	set.IntVar(&f.page, "page", 1, "1-based page to fetch")
	set.IntVar(&f.pageSize, "page-size", 0, "records per page (5, 10, 25 or 50)")
	set.StringVar(&f.sort, "sort", "", "sort column")
	set.StringVar(&f.order, "order", "", "sort direction (asc or desc)")
	set.StringVar(&f.detail, "detail", "", "expand the record with this id after the table")
	set.BoolVarP(&f.verbose, "verbose", "v", false, "print the issued request descriptor")
}

// flagSet is the subset of pflag.FlagSet the list commands use.
type flagSet interface {
	IntVar(p *int, name string, value int, usage string)
	StringVar(p *string, name string, value string, usage string)
	BoolVarP(p *bool, name, shorthand string, value bool, usage string)
}

// buildState assembles a query state from flags on top of the entity
// schema defaults. Filters go through the store mutators so the
// empty-removes-key rule applies; the page is applied last because
// every filter and sort mutation resets it.
func buildState(schema query.Schema, flags *listFlags, filters map[string]string, defaultPageSize int) (query.State, error) {
	st := query.New(schema)

	if defaultPageSize != 0 && schema.AllowsPageSize(defaultPageSize) {
		st = st.SetPageSize(defaultPageSize)
	}

	for key, value := range filters {
		if !schema.AllowsFilter(key) {
			return st, fmt.Errorf("unknown filter %q", key)
		}
		st = st.SetFilter(key, value)
	}

	if flags.sort != "" {
		if !schema.AllowsSort(flags.sort) {
			return st, fmt.Errorf("unknown sort column %q (one of %v)", flags.sort, schema.SortColumns)
		}
		// Direct assignment rather than SetSort: re-naming the active
		// column on the command line must not flip the direction.
		st.Sort = query.Sort{Column: flags.sort, Direction: query.Descending}
		st = st.SetPage(1)
	}
	switch flags.order {
	case "":
	case string(query.Ascending):
		st.Sort.Direction = query.Ascending
	case string(query.Descending):
		st.Sort.Direction = query.Descending
	default:
		return st, fmt.Errorf("invalid order %q (asc or desc)", flags.order)
	}

	if flags.pageSize != 0 {
		if !schema.AllowsPageSize(flags.pageSize) {
			return st, fmt.Errorf("invalid page size %d (one of %v)", flags.pageSize, schema.PageSizes)
		}
		st = st.SetPageSize(flags.pageSize)
	}

	if flags.page < 1 {
		return st, fmt.Errorf("invalid page %d", flags.page)
	}
	st = st.SetPage(flags.page)

	return st, nil
}

// newAPIClient loads the CLI config and creates the API client.
func newAPIClient() (*client.APIClient, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return apiClient, cfg, nil
}

// minConfidenceValue validates a --min-confidence flag. Zero means no
// constraint and is left out of the filters entirely.
func minConfidenceValue(v int) (string, error) {
	if v < 0 || v > 100 {
		return "", fmt.Errorf("invalid min confidence %d (0-100)", v)
	}
	if v == 0 {
		return "", nil
	}
	return strconv.Itoa(v), nil
}
