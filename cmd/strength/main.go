// Command strength analyzes and generates passwords from the terminal.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/service"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return 1
	}

	switch args[0] {
	case "analyze":
		return analyzeCmd(args[1:], stdin, stdout, stderr)
	case "generate":
		return generateCmd(args[1:], stdout, stderr)
	case "hash":
		return hashCmd(stdin, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: strength <command> [flags]

Commands:
  analyze [-time]      read a password from stdin and print its analysis
  generate [-length N] print a random password (default length 16)
  hash                 read a vault secret from stdin and print its argon2id hash`)
}

func analyzeCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	timeOnly := fs.Bool("time", false, "print only the estimated brute-force time")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	password, err := readLine(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading password: %v\n", err)
		return 1
	}

	svc := service.NewAnalyzerService(strength.DefaultCommonPasswords())
	resp := svc.Analyze(password)

	if *timeOnly {
		fmt.Fprintf(stdout, "Estimated time to crack by brute force: %s\n", resp.CrackTimeDisplay)
		return 0
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func generateCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	length := fs.Int("length", crypto.DefaultLength, "password length")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	password, err := crypto.Generate(*length)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, password)
	return 0
}

func hashCmd(stdin io.Reader, stdout, stderr io.Writer) int {
	secret, err := readLine(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading secret: %v\n", err)
		return 1
	}
	if secret == "" {
		fmt.Fprintln(stderr, "Error: secret must not be empty")
		return 1
	}

	hash, err := crypto.HashSecret(secret)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, hash)
	return 0
}

// readLine returns the first line of r without its line ending.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
