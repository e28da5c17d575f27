// Package cmd implements the CLI application to reconcile a Kalshi account.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/etnz/kalshi"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&curveCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

const depositsEnv = "KPR_DEPOSITS"

// defaultDeposits resolves the default for the -deposits flag: the
// KPR_DEPOSITS environment variable when set, $40 otherwise.
func defaultDeposits() float64 {
	s := os.Getenv(depositsEnv)
	if s == "" {
		return 40
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("warning: ignoring invalid %s=%q: %v", depositsEnv, s, err)
		return 40
	}
	return v
}

// inputFlags holds the flags shared by the reporting subcommands: where to
// read the exported account files from and how to interpret them.
type inputFlags struct {
	fills       string
	settlements string
	balance     string
	positions   string
	deposits    float64
	days        int
}

func (c *inputFlags) AddFlags(f *flag.FlagSet) {
	f.StringVar(&c.fills, "fills", "fills.json", "Path to the exported fills file.")
	f.StringVar(&c.settlements, "settlements", "settlements.json", "Path to the exported settlements file.")
	f.StringVar(&c.balance, "balance", "", "Path to the exported balance file. Optional.")
	f.StringVar(&c.positions, "positions", "", "Path to the exported event positions file. Optional.")
	f.Float64Var(&c.deposits, "deposits", defaultDeposits(), "Total cash deposited on the exchange, in dollars. Defaults to $KPR_DEPOSITS.")
	f.IntVar(&c.days, "days", 365, "Lookback window in days for fills and settlements. 0 keeps everything.")
}

// loadSummary reads the input files and reconciles the account.
func (c *inputFlags) loadSummary() (*kalshi.PortfolioSummary, error) {
	fills, err := decodeRecordsFile(c.fills, "fills", "data")
	if err != nil {
		return nil, err
	}
	settlements, err := decodeRecordsFile(c.settlements, "settlements", "data")
	if err != nil {
		return nil, err
	}

	if c.days > 0 {
		minTS := time.Now().AddDate(0, 0, -c.days).UnixMilli()
		fills = kalshi.Since(fills, minTS)
		settlements = kalshi.Since(settlements, minTS)
	}

	var balance kalshi.Record
	if c.balance == "" {
		log.Println("warning: no balance file, cash will read as zero")
	} else {
		balance, err = decodeRecordFile(c.balance, "balance")
		if err != nil {
			return nil, err
		}
	}

	var positions []kalshi.Record
	if c.positions != "" {
		positions, err = decodeRecordsFile(c.positions, "event_positions", "positions", "data")
		if err != nil {
			return nil, err
		}
	}

	account := kalshi.NewAccountBalance(balance, positions)
	return kalshi.NewSummary(fills, settlements, account, kalshi.M(c.deposits)), nil
}

func decodeRecordsFile(filename string, keys ...string) ([]kalshi.Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", filename, err)
	}
	defer f.Close()

	records, err := kalshi.DecodeRecords(f, keys...)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return records, nil
}

func decodeRecordFile(filename string, keys ...string) (kalshi.Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", filename, err)
	}
	defer f.Close()

	record, err := kalshi.DecodeRecord(f, keys...)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return record, nil
}
