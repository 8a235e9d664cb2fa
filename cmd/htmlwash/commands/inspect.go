package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/htmlwash/pkg/washer"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Report the tags and attributes a document uses",
	Long: `Inspect parses a document and reports its tag and attribute usage
without modifying it. The report shows what a policy would need to
allow for the document to survive a wash, and flags the tags that are
always removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("json", false, "output the report as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		logError("reading input: %v", err)
		return err
	}

	report, err := washer.Inspect(input)
	if err != nil {
		logError("parsing input: %v", err)
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	tags := make([]string, 0, len(report.Elements))
	for tag := range report.Elements {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		line := fmt.Sprintf("%-12s %d", tag, report.Elements[tag])
		if attrs := report.Attributes[tag]; len(attrs) > 0 {
			line += "  [" + strings.Join(attrs, " ") + "]"
		}
		fmt.Println(line)
	}
	if report.ImagesMissingAlt > 0 {
		fmt.Printf("\nimages without alt: %d\n", report.ImagesMissingAlt)
	}
	if len(report.BlockedTags) > 0 {
		fmt.Printf("always removed: %s\n", strings.Join(report.BlockedTags, ", "))
	}
	return nil
}
