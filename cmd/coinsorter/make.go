// Default change-making flow for the coinsorter CLI.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	coinsorter "github.com/Oichkatzelesfrettschen/CoinSorter"
	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
	"github.com/Oichkatzelesfrettschen/CoinSorter/render"
)

// runMake solves an amount against a table and prints the coin vector.
// Positional args may name the amount and the table in either order;
// a missing amount is read from stdin.
func runMake(cmd *cobra.Command, args []string) error {
	amount := 0
	haveAmount := false
	sysName := flagSystem

	for _, arg := range args {
		if n, err := parseAmount(arg); err == nil {
			amount = n
			haveAmount = true
			continue
		}
		sysName = arg
	}

	sys, err := resolveSystem(sysName)
	if err != nil {
		return err
	}

	if !haveAmount {
		amount, err = promptAmount(sys.Name)
		if err != nil {
			return err
		}
	}

	objective, err := resolveObjective(flagObjective)
	if err != nil {
		return err
	}

	res, err := coins.Solve(sys, amount, coins.Options{Objective: objective})
	if err != nil {
		return fmt.Errorf("make change for %d: %w", amount, err)
	}

	if flagJSON {
		doc, err := render.JSON(sys, amount, res, coinsorter.Version)
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		fmt.Println(string(doc))
		return nil
	}

	return render.Text(os.Stdout, sys, amount, res)
}

// promptAmount reads an amount from stdin. The prompt itself only
// appears on a terminal so piped input stays clean.
func promptAmount(sysName string) (int, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("Enter amount in %s smallest units: ", sysName)
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("read amount: %w", err)
	}
	return parseAmount(strings.TrimSpace(line))
}
