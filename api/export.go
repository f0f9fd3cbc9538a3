package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download spreadsheets from the upstream service",
	}
	cmd.AddCommand(exportSummaryCmd(), exportShareHolderCmd())
	return cmd
}

func exportSummaryCmd() *cobra.Command {
	var fundType, date, out string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Export the shareholders summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialUpstream()
			if err != nil {
				return err
			}
			defer client.Close()

			file, err := client.ExportShareHoldersSummaryExcel(cmd.Context(), vigilio.SummaryExport{FundType: fundType, Date: date})
			if err != nil {
				return fmt.Errorf("export summary: %w", err)
			}
			return saveExcel(file, out, fmt.Sprintf("shareholders_summary_%s.xlsx", fundType))
		},
	}
	cmd.Flags().StringVar(&fundType, "fund-type", "", "fund type ID")
	cmd.Flags().StringVar(&date, "date", "", "Jalali date, e.g. 1403/08/15")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: temp dir + upstream file name)")
	_ = cmd.MarkFlagRequired("fund-type")
	return cmd
}

func exportShareHolderCmd() *cobra.Command {
	var fund, out string
	cmd := &cobra.Command{
		Use:   "shareholder ID",
		Short: "Export one shareholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid shareholder ID %q", args[0])
			}

			client, err := dialUpstream()
			if err != nil {
				return err
			}
			defer client.Close()

			file, err := client.ExportShareHolderExcel(cmd.Context(), int32(id), fund)
			if err != nil {
				return fmt.Errorf("export shareholder %d: %w", id, err)
			}
			return saveExcel(file, out, fmt.Sprintf("shareholder_%d.xlsx", id))
		},
	}
	cmd.Flags().StringVar(&fund, "fund", "", "fund ticker")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: temp dir + upstream file name)")
	return cmd
}

// exportPath picks out, or the upstream file name inside the temp dir.
func exportPath(out string, file vigilio.ExcelFile, fallback string) string {
	if out != "" {
		return out
	}
	name := filepath.Base(file.Filename)
	if file.Filename == "" || name == "." || name == string(filepath.Separator) {
		name = fallback
	}
	return filepath.Join(os.TempDir(), name)
}

func saveExcel(file vigilio.ExcelFile, out, fallback string) error {
	path := exportPath(out, file, fallback)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	newPrinter().Success("wrote %d bytes to %s", len(file.Data), path)
	return nil
}
