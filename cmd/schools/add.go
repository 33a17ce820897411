package main

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/schools-directory/internal/form"
	"github.com/aanand-mishra/schools-directory/internal/page"

	"github.com/spf13/cobra"
)

// flagUsage describes the add flag for each form field.
var flagUsage = map[string]string{
	form.FieldName:    "School name (required)",
	form.FieldAddress: "Street address (required)",
	form.FieldCity:    "City (required)",
	form.FieldState:   "State (required)",
	form.FieldContact: "10-digit contact number (required)",
	form.FieldEmail:   "Email address (required)",
	form.FieldImage:   "Image URL",
}

func newAddCmd(c *cli) *cobra.Command {
	values := make(map[string]*string, len(form.Fields))

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new school to the directory",
		Long: `Fill in the school form from flags and submit it once.

Every field except --image is required. Field errors are listed and
nothing is sent until they are fixed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := page.NewAddSchool(c.client)
			for _, field := range form.Fields {
				p.SetField(field, *values[field])
			}

			p.Submit(cmd.Context())

			renderAddSchool(cmd.OutOrStdout(), p)
			if !p.Errors.Valid() || p.SubmitError != "" {
				return errReported
			}
			return nil
		},
	}

	for _, field := range form.Fields {
		values[field] = cmd.Flags().String(field, "", flagUsage[field])
	}

	return cmd
}

func renderAddSchool(w io.Writer, p *page.AddSchool) {
	st := newStyles(w)

	fmt.Fprintln(w, st.title.Render("Add New School"))

	if p.SuccessMessage != "" {
		fmt.Fprintln(w, st.success.Render(p.SuccessMessage))
	}
	if p.SubmitError != "" {
		fmt.Fprintln(w, st.failure.Render(p.SubmitError))
	}

	if !p.Errors.Valid() {
		fmt.Fprintln(w, "Please fix the following fields:")
		for _, field := range form.Fields {
			if msg, ok := p.Errors[field]; ok {
				fmt.Fprintf(w, "  --%s: %s\n", field, st.failure.Render(msg))
			}
		}
	}
}
