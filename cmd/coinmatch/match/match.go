package match

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/DE-labtory/coinmatch"
	"github.com/DE-labtory/coinmatch/log"
	"github.com/DE-labtory/coinmatch/option"
	"github.com/urfave/cli"
)

func Cmds() []cli.Command {
	return []cli.Command{
		{
			Name:      "value",
			Usage:     "Print the value of a coin in cents",
			UsageText: "coinmatch value penny|nickel|dime|quarter[:state]",
			Action: func(c *cli.Context) error {
				return value(c.App.Writer, c.Args().First())
			},
		},
		{
			Name:      "plus-one",
			Usage:     "Add one to a number, or print None without one",
			UsageText: "coinmatch plus-one [n]",
			Action: func(c *cli.Context) error {
				return plusOne(c.App.Writer, c.Args())
			},
		},
		{
			Name:      "name",
			Usage:     "Spell out 1, 3, 5 or 7",
			UsageText: "coinmatch name n",
			Action: func(c *cli.Context) error {
				return name(c.App.Writer, c.Args().First())
			},
		},
		{
			Name:      "sort",
			Usage:     "Set quarters aside by state and count the other coins",
			UsageText: "coinmatch sort coin [coin...]",
			Action: func(c *cli.Context) error {
				return sortCoins(c.App.Writer, c.Args())
			},
		},
	}
}

func value(w io.Writer, arg string) error {
	c, err := coinmatch.ParseCoin(arg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %d\n", c, coinmatch.ValueInCents(c))
	return err
}

func plusOne(w io.Writer, args []string) error {
	x := option.None[int32]()
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return err
		}
		x = option.Some(int32(n))
	}

	result := coinmatch.PlusOne(x)
	log.Debug("op", "plus-one", "in", x, "out", result)
	_, err := fmt.Fprintln(w, result)
	return err
}

func name(w io.Writer, arg string) error {
	n, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return err
	}

	var line string
	coinmatch.NameOf(uint8(n)).Match(
		func(s string) { line = s },
		func() { line = "None" },
	)
	_, err = fmt.Fprintln(w, line)
	return err
}

func sortCoins(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no coins to sort")
	}

	coins := make([]coinmatch.Coin, 0, len(args))
	for _, arg := range args {
		c, err := coinmatch.ParseCoin(arg)
		if err != nil {
			return err
		}
		coins = append(coins, c)
	}

	tracer := coinmatch.NewMemCacheTracer()
	sorter := coinmatch.NewSorter(tracer)
	sorter.SortAll(coins)
	tracer.Trace()

	tally := sorter.Tally()
	lines := []string{
		fmt.Sprintf("tally %s", tally.ID),
		fmt.Sprintf("cents: %d", tally.Cents),
		fmt.Sprintf("other coins: %d", tally.Count),
	}

	states := make([]string, 0, len(tally.Quarters))
	for state := range tally.Quarters {
		states = append(states, state)
	}
	sort.Strings(states)
	for _, state := range states {
		lines = append(lines, fmt.Sprintf("quarters from %s: %d", state, tally.Quarters[state]))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
