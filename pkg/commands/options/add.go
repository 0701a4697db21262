// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// AddOptions captures the flags used when recording a reflection.
type AddOptions struct {
	Text    string
	Tags    []string
	Testing bool
}

func AddTagArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil,
		`Tag symbol to attach, repeatable: -t 🌿 -t ❤️.`)
}

// AddTestingArg registers the development escape hatch that disables the
// one-entry-per-day gate.
func AddTestingArg(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().BoolVar(&o.Testing, "testing", false,
		"Allow multiple entries per day (development only).")
	_ = cmd.Flags().MarkHidden("testing")
}
