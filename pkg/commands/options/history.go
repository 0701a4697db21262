package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO = "2006-01-02"
)

// HistoryOptions captures the history view filters.
type HistoryOptions struct {
	Search   string
	Tag      string
	Window   string
	OnString string
	ShowID   bool
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Keep entries whose text contains this, case-insensitive.")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Keep entries carrying this tag symbol.")
	cmd.Flags().StringVarP(&o.Window, "window", "w", "all",
		"Time window: all, week, month, year, or day.")
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a calendar day, example: --on="2025-02-28". Implies the day window.`)
}

func AddShowIDArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show entry ids.")
}

func (o *HistoryOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
