package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cocoonstack/macgen/config"
	"github.com/cocoonstack/macgen/mac"
)

// addrReport is the JSON shape of one address.
type addrReport struct {
	MAC     mac.Addr `json:"mac"`
	Unicast bool     `json:"unicast"`
	Local   bool     `json:"local"`
}

func reportOf(a mac.Addr) addrReport {
	return addrReport{MAC: a, Unicast: a.IsUnicast(), Local: a.IsLocal()}
}

// printAddrs writes addrs to w, one per line for text or as a JSON array.
func printAddrs(w io.Writer, addrs []mac.Addr, format string) error {
	if format == config.FormatJSON {
		reports := make([]addrReport, 0, len(addrs))
		for _, a := range addrs {
			reports = append(reports, reportOf(a))
		}
		return writeJSON(w, reports)
	}
	for _, a := range addrs {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
