package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/vk/inetgraph/internal/inet"
)

// portWords is the pool the generator draws ports from. Index 0 is the
// wildcard; "0" checks that explicit digits never alias hidden labels.
var portWords = []string{"*", "a", "b", "c", "x", "0"}

// sourceFromSeeds turns each seed into one declaration line and reports how
// many wildcards were written.
func sourceFromSeeds(seeds []int) (string, int) {
	var sb strings.Builder
	wildcards := 0
	for _, seed := range seeds {
		kind := inet.Kinds[seed%len(inet.Kinds)]
		sb.WriteString(kind.Keyword())
		for p := 0; p < kind.Arity(); p++ {
			w := (seed >> (3 + 4*p)) % len(portWords)
			if w == 0 {
				wildcards++
			}
			sb.WriteString(" ")
			sb.WriteString(portWords[w])
		}
		sb.WriteString("\n")
	}
	return sb.String(), wildcards
}

func TestParserProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	seeds := gen.SliceOf(gen.IntRange(0, 1<<20))

	properties.Property("each wildcard adds exactly one terminator", prop.ForAll(
		func(seeds []int) bool {
			src, wildcards := sourceFromSeeds(seeds)
			net, err := Parse(src)
			return err == nil && len(net) == len(seeds)+wildcards
		},
		seeds,
	))

	properties.Property("hidden labels are 0..n-1 and each sits in exactly two ports", prop.ForAll(
		func(seeds []int) bool {
			src, wildcards := sourceFromSeeds(seeds)
			net, _ := Parse(src)

			uses := make(map[int]int)
			for _, l := range net.Labels() {
				if id, ok := l.HiddenID(); ok {
					uses[id]++
				}
			}
			if len(uses) != wildcards {
				return false
			}
			for id := 0; id < wildcards; id++ {
				if uses[id] != 2 {
					return false
				}
			}
			return true
		},
		seeds,
	))

	properties.Property("a prefix of the source parses to a prefix of the net", prop.ForAll(
		func(seeds []int, cut int) bool {
			if len(seeds) == 0 {
				return true
			}
			cut %= len(seeds) + 1
			full, _ := sourceFromSeeds(seeds)
			head, _ := sourceFromSeeds(seeds[:cut])

			whole, _ := Parse(full)
			prefix, _ := Parse(head)
			if len(prefix) == 0 {
				return true
			}
			return len(prefix) <= len(whole) && reflect.DeepEqual(prefix, whole[:len(prefix)])
		},
		seeds,
		gen.IntRange(0, 1000),
	))

	properties.Property("trailing comments never change the net", prop.ForAll(
		func(seeds []int) bool {
			src, _ := sourceFromSeeds(seeds)
			commented := strings.ReplaceAll(src, "\n", " // FIXME ROOT q\n")
			plain, err1 := Parse(src)
			withComments, err2 := Parse(commented)
			return err1 == nil && err2 == nil && reflect.DeepEqual(plain, withComments)
		},
		seeds,
	))

	properties.Property("parsing is deterministic", prop.ForAll(
		func(seeds []int) bool {
			src, _ := sourceFromSeeds(seeds)
			first, err1 := Parse(src)
			second, err2 := Parse(src)
			return err1 == nil && err2 == nil && reflect.DeepEqual(first, second)
		},
		seeds,
	))

	properties.TestingRun(t)
}
