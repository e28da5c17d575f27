package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/kalshi"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the reconciled summary as a markdown report.
func SummaryMarkdown(s *kalshi.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Kalshi Account Summary")
	doc.PlainText(fmt.Sprintf("Portfolio value: %s (cash %s, open positions %s)",
		s.Account.PortfolioTotal(), s.Account.Cash, s.Account.OpenPositions))

	doc.H2("Capital")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Total deposits", s.TotalDeposits.String()},
			{"Total invested", s.CashFlow.TotalInvested.String()},
			{"Reinvested", s.CashFlow.Reinvested.String()},
			{"Net new cash", s.CashFlow.CashInvested.String()},
		},
	})

	doc.H2("Profit")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Net profit", fmt.Sprintf("%s (%s of deposits)", s.NetProfit.SignedString(), s.NetProfitPercent.SignedString())},
			{"Realized P&L", s.Ledger.RealizedPnL.SignedString()},
			{"Unrealized P&L", s.UnrealizedPnL.SignedString()},
			{"Return on invested", s.ReturnRate.SignedString()},
			{"Cash in", s.Ledger.CashIn.String()},
			{"Cash out", s.Ledger.CashOut.String()},
		},
	})

	return doc.String()
}

// CurveMarkdown renders the cumulative realized P&L series as a table,
// one row per settlement, oldest first.
func CurveMarkdown(series []kalshi.Point) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Realized P&L Curve")
	if len(series) == 0 {
		doc.PlainText("No timestamped settlements to chart.")
		return doc.String()
	}

	rows := make([][]string, 0, len(series))
	for _, p := range series {
		rows = append(rows, []string{day(p.TS), p.Cumulative.SignedString()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Cumulative"},
		Rows:   rows,
	})
	return doc.String()
}
