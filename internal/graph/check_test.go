package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/inetgraph/internal/inet"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		expected []Issue
	}{
		{
			name:     "well-formed net",
			src:      "ROOT r\nLAM r x *\nERA x",
			expected: nil,
		},
		{
			name: "dangling port",
			src:  "ROOT r\nERA r\nERA open",
			expected: []Issue{
				{Kind: DanglingPort, Label: inet.Explicit("open"), Ports: []PortRef{ref(2, 0, inet.Explicit("open"))}},
			},
		},
		{
			name: "overconnected label",
			src:  "ROOT a\nDUP a a b\nERA b",
			expected: []Issue{
				{Kind: OverconnectedLabel, Label: inet.Explicit("a"), Ports: []PortRef{
					ref(0, 0, inet.Explicit("a")),
					ref(1, 0, inet.Explicit("a")),
					ref(1, 1, inet.Explicit("a")),
				}},
			},
		},
		{
			name: "issues in order of first appearance",
			src:  "ROOT y\nERA x\nERA x\nERA x",
			expected: []Issue{
				{Kind: DanglingPort, Label: inet.Explicit("y"), Ports: []PortRef{ref(0, 0, inet.Explicit("y"))}},
				{Kind: OverconnectedLabel, Label: inet.Explicit("x"), Ports: []PortRef{
					ref(1, 0, inet.Explicit("x")),
					ref(2, 0, inet.Explicit("x")),
					ref(3, 0, inet.Explicit("x")),
				}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			issues := Check(Build(mustParse(t, tc.src)))
			assert.Equal(t, tc.expected, issues)
		})
	}
}

func TestIssue_Error(t *testing.T) {
	t.Parallel()

	issues := Check(Build(mustParse(t, "ROOT a\nERA a\nERA a\nERA b")))
	require.Len(t, issues, 2)

	assert.Equal(t, `overconnected label "a" at 0.p0, 1.p0, 2.p0`, issues[0].Error())
	assert.Equal(t, `dangling port "b" at 3.p0`, issues[1].Error())
}
