package halfpipe_test

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/halfpipe-go/halfpipe"
	"github.com/halfpipe-go/halfpipe/arrays"
	"github.com/halfpipe-go/halfpipe/maybes"
	"github.com/halfpipe-go/halfpipe/results"
)

type Item struct {
	ID string
}

type Event struct {
	Type  string
	Items []Item
}

// Example demonstrates a pipeline that extracts purchased item IDs from two
// (fake) event logs, dropping lines that fail to parse.
func Example() {
	ids := halfpipe.Pipe7(
		arrays.From(IterateFile("events-2023.log")),

		arrays.Concat(arrays.From(IterateFile("events-2024.log"))),

		// Parsing may fail; keep the outcome in a Result.
		arrays.Map(func(line string, _ int) mo.Result[Event] {
			event, err := ParseEvent(line)
			return results.FromTuple(event, err)
		}),

		// Keep only the events that parsed.
		arrays.FlatMap(func(r mo.Result[Event], _ int) []Event {
			return halfpipe.Pipe2(r, results.ToMaybe[Event](), maybes.Cata(
				func() []Event { return nil },
				func(e Event) []Event { return []Event{e} },
			))
		}),

		arrays.Filter(func(e Event, _ int) bool {
			return e.Type == "purchase"
		}),

		arrays.FlatMap(func(e Event, _ int) []Item {
			return e.Items
		}),

		arrays.Map(func(it Item, _ int) string {
			return it.ID
		}),

		arrays.Join[string](","),
	)

	fmt.Println(ids)
	// Output: 1001,1002,1003,1004,1005,3001,3002,3003
}

func ExamplePipe2() {
	out := halfpipe.Pipe2("a",
		func(s string) string { return s + "b" },
		func(s string) string { return s + "c" },
	)

	fmt.Println(out)
	// Output: abc
}

func ExampleInvoker0() {
	upper := halfpipe.Invoker0(strings.ToUpper)

	fmt.Println(upper()("hello"))
	// Output: HELLO
}

func ExampleTryPipe2() {
	errNegative := errors.New("negative")

	_, err := halfpipe.TryPipe2("-4",
		strconv.Atoi,
		func(n int) (uint, error) {
			if n < 0 {
				return 0, errNegative
			}
			return uint(n), nil
		},
	)

	fmt.Println(err)
	// Output: negative
}

func IterateFile(path string) iter.Seq[string] {
	switch path {
	case "events-2023.log":
		return arrays.Seq[string]()([]string{
			"purchase:1001,1002,1003",
			"refund:2001",
			"purchase:1004,1005",
			"purchase:", // invalid item (empty ID)
		})
	case "events-2024.log":
		return arrays.Seq[string]()([]string{
			"purchase:3001,3002",
			"invalid-line-without-colon",
			"purchase:3003",
		})
	default:
		return arrays.Seq[string]()(nil)
	}
}

func ParseEvent(line string) (Event, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return Event{}, fmt.Errorf("invalid event format: %q", line)
	}

	eventType := strings.TrimSpace(parts[0])
	rawItems := strings.TrimSpace(parts[1])

	var items []Item
	if rawItems == "" {
		return Event{}, fmt.Errorf("invalid event format: no items")
	}

	for _, id := range strings.Split(rawItems, ",") {
		items = append(items, Item{
			ID: strings.TrimSpace(id),
		})
	}

	return Event{
		Type:  eventType,
		Items: items,
	}, nil
}
