package utils

import (
	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// StatusRow is one query outcome shown in the status table
type StatusRow struct {
	Request  model.QueryRequest
	Envelope *response.Envelope
	Message  string
}

// RenderStatusTable renders a one-line summary of a finance query
func RenderStatusTable(row StatusRow) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Action", "Begin", "End", "Result", "Timestamp"})

	result := text.FgGreen.Sprint("OK")
	timestamp := ""
	if row.Envelope != nil {
		timestamp = row.Envelope.Timestamp
	}
	if row.Envelope == nil || !row.Envelope.Success {
		result = text.FgRed.Sprintf("FAILED: %s", row.Message)
	}

	tw.AppendRow(table.Row{
		text.FgBlue.Sprint(row.Request.Action),
		dash(row.Request.BeginTime),
		dash(row.Request.EndTime),
		result,
		dash(timestamp),
	})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignCenter},
		{Number: 3, Align: text.AlignCenter},
	})

	return tw.Render()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
