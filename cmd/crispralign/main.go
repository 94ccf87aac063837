// Command crispralign provides a CLI for CRISPR editing-outcome alignment
// analysis.
//
// Usage:
//
//	crispralign [command] [options]
//
// Commands:
//
//	align      Globally align a read against a reference
//	variants   Extract indel/substitution calls from an aligned pair
//	homology   Compute position-wise identity of two equal-length strings
//	matrix     Dump the nonzero cells of a scoring matrix
//	batch      Align every FASTA pair in a directory and summarize outcomes
//	version    Show version information
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/helixforge/crispralign/internal/batch"
	"github.com/helixforge/crispralign/pkg/crispralign"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "variants":
		variantsCmd(os.Args[2:])
	case "homology":
		homologyCmd(os.Args[2:])
	case "matrix":
		matrixCmd(os.Args[2:])
	case "batch":
		batchCmd(os.Args[2:])
	case "version":
		fmt.Println(crispralign.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`crispralign - CRISPR editing-outcome alignment tool

Usage:
  crispralign <command> [options]

Commands:
  align      Globally align a read against a reference
  variants   Extract indel/substitution calls from an aligned pair
  homology   Compute position-wise identity of two equal-length strings
  matrix     Dump the nonzero cells of a scoring matrix
  batch      Align every FASTA pair in a directory and summarize outcomes
  version    Show version information
  help       Show this help message

Use "crispralign <command> -h" for more information about a command.`)
}

func scoringFlags(fs *flag.FlagSet) (match, mismatch, nMismatch, nMatch *int) {
	match = fs.Int("match", 5, "match score")
	mismatch = fs.Int("mismatch", -4, "mismatch score")
	nMismatch = fs.Int("n-mismatch", -2, "canonical-base-vs-N score")
	nMatch = fs.Int("n-match", -1, "N-vs-N score")
	return
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	read := fs.String("read", "", "read sequence")
	ref := fs.String("ref", "", "reference sequence")
	incentiveCSV := fs.String("incentive", "", "comma-separated gap-incentive vector, length len(ref)+1")
	gapOpen := fs.Int("gap-open", -1, "gap-open penalty (negative)")
	gapExtend := fs.Int("gap-extend", -1, "gap-extend penalty (negative)")
	match, mismatch, nMismatch, nMatch := scoringFlags(fs)
	fs.Parse(args)

	if *read == "" || *ref == "" {
		fmt.Fprintln(os.Stderr, "Error: both -read and -ref are required")
		fs.Usage()
		os.Exit(1)
	}

	incentive, err := parseIncentive(*incentiveCSV, len(*ref))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -incentive: %v\n", err)
		os.Exit(1)
	}

	m := crispralign.BuildMatrix(int32(*match), int32(*mismatch), int32(*nMismatch), int32(*nMatch))

	result, err := crispralign.Align(*read, *ref, m, incentive, int32(*gapOpen), int32(*gapExtend))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aligning: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Reference: %s\n", result.AlignedRef)
	fmt.Printf("Read:      %s\n", result.AlignedRead)
	fmt.Printf("Match: %.3f%%\n", result.MatchPercent)
}

func variantsCmd(args []string) {
	fs := flag.NewFlagSet("variants", flag.ExitOnError)
	alnRef := fs.String("aligned-ref", "", "aligned reference string")
	alnRead := fs.String("aligned-read", "", "aligned read string")
	includeCSV := fs.String("include", "", "comma-separated reference coordinates to include in the windowed report")
	fs.Parse(args)

	if *alnRef == "" || *alnRead == "" {
		fmt.Fprintln(os.Stderr, "Error: both -aligned-ref and -aligned-read are required")
		fs.Usage()
		os.Exit(1)
	}

	include, err := parseIndexSet(*includeCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -include: %v\n", err)
		os.Exit(1)
	}

	report, err := crispralign.FindVariants(*alnRef, *alnRead, include)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting variants: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Insertions: %d (n=%d)\n", len(report.InsertionPositions), report.InsertionN)
	for i, pos := range report.InsertionPositions {
		fmt.Printf("  at %d, size %d\n", pos, report.InsertionSizes[i])
	}
	fmt.Printf("Deletions: %d (n=%d)\n", len(report.DeletionPositions), report.DeletionN)
	for i, pos := range report.DeletionPositions {
		fmt.Printf("  at %d, size %d\n", pos, report.DeletionSizes[i])
	}
	fmt.Printf("Substitutions: %d\n", report.SubstitutionN)
	for i, pos := range report.SubstitutionPositions {
		fmt.Printf("  at %d -> %c\n", pos, report.SubstitutionValues[i])
	}
}

func homologyCmd(args []string) {
	fs := flag.NewFlagSet("homology", flag.ExitOnError)
	a := fs.String("a", "", "first string")
	b := fs.String("b", "", "second string")
	fs.Parse(args)

	if *a == "" || *b == "" {
		fmt.Fprintln(os.Stderr, "Error: both -a and -b are required")
		fs.Usage()
		os.Exit(1)
	}

	fraction, err := crispralign.Homology(*a, *b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing homology: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%.4f\n", fraction)
}

func matrixCmd(args []string) {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	match, mismatch, nMismatch, nMatch := scoringFlags(fs)
	fs.Parse(args)

	m := crispralign.BuildMatrix(int32(*match), int32(*mismatch), int32(*nMismatch), int32(*nMatch))

	bases := []byte{'A', 'T', 'C', 'G', 'N'}
	for _, a := range bases {
		for _, b := range bases {
			fmt.Printf("%c%c: %d\n", a, b, m.Score(a, b))
		}
	}
}

func batchCmd(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	dir := fs.String("dir", "", "directory of two-record FASTA files (read, reference)")
	incentiveCSV := fs.String("incentive", "", "comma-separated gap-incentive vector applied to every pair")
	gapOpen := fs.Int("gap-open", -1, "gap-open penalty (negative)")
	gapExtend := fs.Int("gap-extend", -1, "gap-extend penalty (negative)")
	fs.Parse(args)

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -dir is required")
		fs.Usage()
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading directory: %v\n", err)
		os.Exit(1)
	}

	m := crispralign.DefaultScoring()
	var outcomes []batch.Outcome

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".fa" && ext != ".fasta" {
			continue
		}

		path := filepath.Join(*dir, entry.Name())
		read, reference, err := crispralign.ReadPairFASTA(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			os.Exit(1)
		}

		incentive, err := parseIncentive(*incentiveCSV, reference.Len())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -incentive: %v\n", err)
			os.Exit(1)
		}

		result, err := crispralign.Align(read.Bases, reference.Bases, m, incentive, int32(*gapOpen), int32(*gapExtend))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aligning %s: %v\n", path, err)
			os.Exit(1)
		}

		report, err := crispralign.FindVariants(result.AlignedRef, result.AlignedRead, fullWindow(reference.Len()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting variants for %s: %v\n", path, err)
			os.Exit(1)
		}

		outcomes = append(outcomes, batch.Outcome{Aligned: result, Variants: report})
	}

	if len(outcomes) == 0 {
		fmt.Fprintln(os.Stderr, "No FASTA pairs found in directory")
		os.Exit(1)
	}

	summary, err := crispralign.Summarize(outcomes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error summarizing batch: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summary.String())
}

// fullWindow returns an inclusion set covering every reference coordinate
// 0..refLen-1, for CLI invocations that don't narrow to a sub-window.
func fullWindow(refLen int) map[int]struct{} {
	window := make(map[int]struct{}, refLen)
	for i := 0; i < refLen; i++ {
		window[i] = struct{}{}
	}
	return window
}

func parseIncentive(csv string, refLen int) ([]int32, error) {
	if csv == "" {
		return crispralign.ZeroIncentive(refLen), nil
	}

	fields := strings.Split(csv, ",")
	incentive := make([]int32, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		incentive[i] = int32(v)
	}
	if len(incentive) != refLen+1 {
		return nil, fmt.Errorf("incentive length %d must equal len(ref)+1 = %d", len(incentive), refLen+1)
	}
	return incentive, nil
}

func parseIndexSet(csv string) (map[int]struct{}, error) {
	if csv == "" {
		return nil, nil
	}

	fields := strings.Split(csv, ",")
	set := make(map[int]struct{}, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		set[v] = struct{}{}
	}
	return set, nil
}
