// Released under an MIT license. See LICENSE.

// Package ui provides cmb's interactive interpreter.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/cmb/internal/engine"
	"github.com/michaelmacinnis/cmb/internal/system/history"
	"github.com/michaelmacinnis/cmb/internal/system/process"
	"github.com/peterh/liner"
)

// Run passes each line of input to e until the input ends.
//
// If interactive is true, lines are read from the terminal with line editing
// and history, and r is ignored. Otherwise lines are read from r without
// prompting.
func Run(e *engine.T, r io.Reader, interactive bool) error {
	if !interactive {
		return script(e, r)
	}

	err := process.BecomeForegroundGroup()
	if err != nil {
		println(err.Error())
	}

	cli := liner.NewLiner()

	_ = history.Load(cli.ReadHistory)

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt(e.Prompt())

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()

			return closeCLI(cli)
		default:
			_ = closeCLI(cli)

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		e.Evaluate(line)
	}
}

func closeCLI(cli *liner.State) error {
	if err := history.Save(cli.WriteHistory); err != nil {
		println("Error writing history: " + err.Error())
	}

	return cli.Close()
}

func script(e *engine.T, r io.Reader) error {
	b := bufio.NewReader(r)

	for {
		line, err := b.ReadString('\n')
		if line != "" {
			e.Evaluate(line)
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}
