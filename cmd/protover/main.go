// Command protover is an operator CLI over the protocol-version registry
// core.
//
// # Usage
//
//	protover -canonicalize "Relay=1,2,3,Cons=1"
//	protover -vote -threshold 2 < lists.txt
//	protover -check 2=3
//	protover -legacy 0.2.8.10
//	protover -supported
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flashbots/protover"
)

func main() {
	var (
		canonicalize = flag.String("canonicalize", "", "Parse a protocol list and print its canonical form")
		vote         = flag.Bool("vote", false, "Compute a vote over protocol lists read from stdin, one per line")
		threshold    = flag.Int("threshold", 1, "Vote threshold used with -vote")
		check        = flag.String("check", "", "Check local support for PROTOCOL_ID=VERSION")
		legacy       = flag.String("legacy", "", "Print the protocol list implied for a legacy release version")
		supported    = flag.Bool("supported", false, "Print the compiled-in supported-protocols list")
	)
	flag.Parse()

	switch {
	case *canonicalize != "":
		entry, err := protover.ParseEntry(*canonicalize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(entry.String())

	case *vote:
		var lists []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				lists = append(lists, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Read error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(protover.ComputeVoteFromList(lists, *threshold))

	case *check != "":
		idStr, versionStr, found := strings.Cut(*check, "=")
		if !found {
			fmt.Fprintln(os.Stderr, "Error: -check wants PROTOCOL_ID=VERSION")
			os.Exit(1)
		}
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad protocol identifier: %v\n", err)
			os.Exit(1)
		}
		version, err := strconv.ParseUint(versionStr, 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad version: %v\n", err)
			os.Exit(1)
		}
		proto, err := protover.ProtocolByID(uint32(id))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if protover.IsSupportedHere(proto, protover.Version(version)) {
			fmt.Printf("%s=%d supported\n", proto, version)
		} else {
			fmt.Printf("%s=%d not supported\n", proto, version)
			os.Exit(1)
		}

	case *legacy != "":
		fmt.Println(protover.ComputeForOldTor(*legacy).String())

	case *supported:
		fmt.Println(protover.SupportedProtocols)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
