package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aussiebroadwan/clients/pkg/clientsdk"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// render writes v as indented JSON, or calls asTable for table output.
func render(w io.Writer, format string, v any, asTable func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(v)
	case "table", "":
		asTable(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func clientsTable(w io.Writer, clients []clientsdk.Client) {
	if len(clients) == 0 {
		fmt.Fprintln(w, text.FgYellow.Sprint("No clients found"))
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Tier", "Consumer key", "Callback URL", "Description"})
	for _, c := range clients {
		t.AppendRow(table.Row{c.Name, c.Tier, c.ConsumerKey, c.CallbackURL, c.Description})
	}
	t.AppendFooter(table.Row{"Total", len(clients)})
	t.Render()
}

func clientDetail(w io.Writer, c clientsdk.Client) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"Name", c.Name},
		{"Description", c.Description},
		{"Tier", c.Tier},
		{"Callback URL", c.CallbackURL},
		{"Consumer key", c.ConsumerKey},
	})
	if c.ConsumerSecret != "" {
		t.AppendRow(table.Row{"Consumer secret", c.ConsumerSecret})
	}
	if self, ok := c.Links["self"]; ok {
		t.AppendRow(table.Row{"Link", self.Href})
	}
	t.Render()

	if c.ConsumerSecret != "" {
		fmt.Fprintln(w, text.FgHiYellow.Sprint("Store the consumer secret now; it cannot be retrieved again."))
	}
}

func subscriptionsTable(w io.Writer, subs []clientsdk.Subscription) {
	if len(subs) == 0 {
		fmt.Fprintln(w, text.FgYellow.Sprint("No subscriptions found"))
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"API", "Version", "Provider", "Context", "Status", "Tier"})
	for _, s := range subs {
		t.AppendRow(table.Row{s.APIName, s.APIVersion, s.APIProvider, s.APIContext, s.APIStatus, s.Tier})
	}
	t.AppendFooter(table.Row{"Total", len(subs)})
	t.Render()
}

func healthTable(w io.Writer, h clientsdk.HealthResponse) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Check", "Status"})
	t.AppendRow(table.Row{"service", statusText(h.Status)})
	if h.Checks != nil {
		t.AppendRow(table.Row{"database", statusText(h.Checks.Database)})
		t.AppendRow(table.Row{"upstream", statusText(h.Checks.Upstream)})
	}
	t.AppendFooter(table.Row{"Version", h.Version})
	t.Render()
}

func statusText(s string) string {
	if s == "ok" {
		return text.FgGreen.Sprint(s)
	}
	return text.FgRed.Sprint(s)
}
