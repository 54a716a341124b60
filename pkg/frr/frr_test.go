package frr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frrconf/pkg/frr"
)

var isisConfig = []string{
	"hostname HOSTNAME",
	"password PASSWORD",
	"log file /var/log/isisd.log",
	"!",
	"!",
	"interface eth0",
	" ip router isis SR",
	" isis network point-to-point",
	"!",
	"interface eth1",
	" ip router isis SR",
	"!",
	"!",
	"router isis SR",
	" net 49.0000.0000.0000.0001.00",
	" is-type level-1",
	" topology ipv6-unicast",
	" lsp-gen-interval 2",
	" segment-routing on",
	" segment-routing node-msd 8",
	" segment-routing prefix 10.1.1.1/32 index 100 explicit-null",
	" segment-routing prefix 2001:db8:1000::1/128 index 101 explicit-null",
	"!",
	"line vty",
}

var vrfConfig = []string{
	"hostname HOSTNAME",
	"password PASSWORD",
	"log file /var/log/isisd.log",
	"!",
	"!",
	"interface eth0",
	" ip router isis SR",
	" isis network point-to-point",
	"!",
	"interface eth0 vrf RED",
	" ip router isis SRRED",
	" isis network point-to-point",
	"!",
	"interface eth1",
	" ip router isis SR",
	"!",
	"interface eth8 vrf BLUE",
	" ip router isis SRBLUE",
	"!",
	"!",
	"router isis SR",
	" net 49.0000.0000.0000.0001.00",
	" is-type level-1",
	" topology ipv6-unicast",
	" lsp-gen-interval 2",
	" segment-routing on",
	" segment-routing node-msd 8",
	" segment-routing prefix 10.1.1.1/32 index 100 explicit-null",
	" segment-routing prefix 2001:db8:1000::1/128 index 101 explicit-null",
	"!",
	"line vty",
}

// isisRouterSection is the body of "router isis SR" in isisConfig.
var isisRouterSection = []string{
	"router isis SR",
	" net 49.0000.0000.0000.0001.00",
	" is-type level-1",
	" topology ipv6-unicast",
	" lsp-gen-interval 2",
	" segment-routing on",
	" segment-routing node-msd 8",
	" segment-routing prefix 10.1.1.1/32 index 100 explicit-null",
	" segment-routing prefix 2001:db8:1000::1/128 index 101 explicit-null",
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestFindFirstBlock(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		want   frr.Block
		wantOK bool
	}{
		{name: "interface eth0", start: "interface eth0", want: frr.Block{Start: 5, Stop: 8}, wantOK: true},
		{name: "interface eth1", start: "interface eth1", want: frr.Block{Start: 13, Stop: 15}, wantOK: true},
		{name: "router isis SR", start: "router isis SR", want: frr.Block{Start: 20, Stop: 29}, wantOK: true},
		{name: "regex", start: "interface .*1", want: frr.Block{Start: 13, Stop: 15}, wantOK: true},
		{name: "vrf RED", start: "interface .* vrf RED", want: frr.Block{Start: 9, Stop: 12}, wantOK: true},
		{name: "vrf BLUE", start: "interface .* vrf BLUE", want: frr.Block{Start: 16, Stop: 18}, wantOK: true},
		{name: "missing", start: "interface eth9", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := frr.FindFirstBlock(vrfConfig, tt.start, "!", 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindFirstBlockStartAtZero(t *testing.T) {
	got, ok, err := frr.FindFirstBlock([]string{"a", "x", "!", "b"}, "a", "!", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, frr.Block{Start: 0, Stop: 2}, got)
	assert.Equal(t, 2, got.Len())
}

func TestFindFirstBlockStartNotTestedAsStop(t *testing.T) {
	got, ok, err := frr.FindFirstBlock([]string{"!", "x", "!"}, "!", "!", 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, frr.Block{Start: 0, Stop: 2}, got)
}

func TestFindFirstBlockNoStop(t *testing.T) {
	_, ok, err := frr.FindFirstBlock([]string{"a", "x", "y"}, "a", "!", 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindFirstBlockStartAt(t *testing.T) {
	got, ok, err := frr.FindFirstBlock(vrfConfig, "interface eth0", "!", 6)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, frr.Block{Start: 9, Stop: 12}, got)

	_, ok, err = frr.FindFirstBlock(vrfConfig, "interface eth0", "!", len(vrfConfig)+10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindBlocks(t *testing.T) {
	got, err := frr.FindBlocks(vrfConfig, "interface .*", "!")
	require.NoError(t, err)
	assert.Equal(t, []frr.Block{
		{Start: 5, Stop: 8},
		{Start: 9, Stop: 12},
		{Start: 13, Stop: 15},
		{Start: 16, Stop: 18},
	}, got)

	got, err = frr.FindBlocks(vrfConfig, "bgp", "!")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindBlocksAdjacentSections(t *testing.T) {
	lines := []string{
		"interface eth0",
		" ip router isis SR",
		"interface eth1",
		" ip router isis SR",
		"router isis SR",
	}
	got, err := frr.FindBlocks(lines, "interface .*", frr.DefaultStopPattern)
	require.NoError(t, err)
	assert.Equal(t, []frr.Block{{Start: 0, Stop: 2}, {Start: 2, Stop: 4}}, got)

	cfg := frr.FromLines(lines)
	n, err := cfg.ModifySection(frr.Edit{Start: "interface .*"})
	require.NoError(t, err)
	assert.Equal(t, len(got), n, "listing and editing agree on the sections")
	assert.Equal(t, []string{"router isis SR"}, cfg.Lines())
}

func TestFindElements(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		startAt int
		want    []int
	}{
		{name: "interfaces", pattern: `interface eth\d+`, want: []int{5, 13}},
		{name: "vrf", pattern: `interface eth\d+ vrf RED`, want: []int{9}},
		{name: "absolute with offset", pattern: `interface eth\d+`, startAt: 6, want: []int{13}},
		{name: "none", pattern: `router bgp \d+`, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := frr.FindElements(vrfConfig, tt.pattern, tt.startAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindFirstElement(t *testing.T) {
	got, err := frr.FindFirstElement(vrfConfig, `interface eth\d+`, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = frr.FindFirstElement(vrfConfig, `interface eth\d+`, 6)
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	// A prefix is not enough, the whole line has to match.
	got, err = frr.FindFirstElement(vrfConfig, "router isis", 0)
	require.NoError(t, err)
	assert.Equal(t, frr.NotFound, got)
}

func TestModifySection(t *testing.T) {
	tests := []struct {
		name string
		edit frr.Edit
		want []string
		n    int
	}{
		{
			name: "remove router isis SR",
			edit: frr.Edit{Start: "router isis SR"},
			n:    1,
			want: concat(isisConfig[:13], []string{"!", "line vty"}),
		},
		{
			name: "remove router isis SR with stop mark",
			edit: frr.Edit{Start: "router isis SR", RemoveStopMark: true},
			n:    1,
			want: concat(isisConfig[:13], []string{"line vty"}),
		},
		{
			name: "remove interface once",
			edit: frr.Edit{Start: `interface eth\d+$`, Count: 1},
			n:    1,
			want: concat(isisConfig[:5], isisConfig[8:]),
		},
		{
			name: "remove interface once with stop mark",
			edit: frr.Edit{Start: `interface eth\d+$`, RemoveStopMark: true, Count: 1},
			n:    1,
			want: concat(isisConfig[:5], isisConfig[9:]),
		},
		{
			name: "remove every interface with stop mark",
			edit: frr.Edit{Start: `interface eth\d+$`, RemoveStopMark: true},
			n:    2,
			want: concat(isisConfig[:5], isisConfig[12:]),
		},
		{
			name: "nothing matches",
			edit: frr.Edit{Start: "unknown config section"},
			n:    0,
			want: isisConfig,
		},
		{
			name: "start must match the whole line",
			edit: frr.Edit{Start: "router isis"},
			n:    0,
			want: isisConfig,
		},
		{
			name: "replace with itself",
			edit: frr.Edit{Start: "interface eth0", Replacement: []string{"interface eth0", " THIS IS REPLACED"}},
			n:    1,
			want: concat(isisConfig[:5], []string{"interface eth0", " THIS IS REPLACED"}, isisConfig[8:]),
		},
		{
			name: "explicit stop pattern",
			edit: frr.Edit{Start: "router isis SR", Stop: " segment-routing on"},
			n:    1,
			want: concat(isisConfig[:13], isisConfig[18:]),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := frr.FromLines(isisConfig)
			n, err := cfg.ModifySection(tt.edit)
			require.NoError(t, err)
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.want, cfg.Lines())
			assert.Equal(t, isisConfig, cfg.Original())
		})
	}
}

func TestModifySectionScenario(t *testing.T) {
	input := []string{"interface eth0", " ip router isis SR", "!", "interface eth1", " ip router isis SR", "!"}

	cfg := frr.FromLines(input)
	n, err := cfg.ModifySection(frr.Edit{Start: "interface eth0"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"!", "interface eth1", " ip router isis SR", "!"}, cfg.Lines())

	cfg = frr.FromLines(input)
	n, err = cfg.ModifySection(frr.Edit{Start: "interface eth0", RemoveStopMark: true})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"interface eth1", " ip router isis SR", "!"}, cfg.Lines())
}

func TestModifySectionDrainsOneAtATime(t *testing.T) {
	cfg := frr.FromLines(isisConfig)
	edit := frr.Edit{Start: `interface eth\d+`, Count: 1}

	for i := 0; i < 2; i++ {
		n, err := cfg.ModifySection(edit)
		require.NoError(t, err)
		require.Equal(t, 1, n, "call %d", i+1)
	}
	n, err := cfg.ModifySection(edit)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestModifySectionLengthChange(t *testing.T) {
	b, ok, err := frr.FindFirstBlock(isisConfig, "router isis SR", frr.DefaultStopPattern, 0)
	require.NoError(t, err)
	require.True(t, ok)

	cfg := frr.FromLines(isisConfig)
	_, err = cfg.ModifySection(frr.Edit{Start: "router isis SR"})
	require.NoError(t, err)
	assert.Equal(t, len(isisConfig)-b.Len(), cfg.Len())

	cfg = frr.FromLines(isisConfig)
	_, err = cfg.ModifySection(frr.Edit{Start: "router isis SR", RemoveStopMark: true})
	require.NoError(t, err)
	assert.Equal(t, len(isisConfig)-b.Len()-1, cfg.Len())

	replacement := []string{"router isis SR", " net 49.0000.0000.0000.0002.00"}
	cfg = frr.FromLines(isisConfig)
	_, err = cfg.ModifySection(frr.Edit{Start: "router isis SR", Replacement: replacement})
	require.NoError(t, err)
	assert.Equal(t, len(isisConfig)-b.Len()+len(replacement), cfg.Len())
}

func TestModifySectionSkipsInsertedLines(t *testing.T) {
	cfg := frr.FromLines([]string{"a", "y", "!", "a", "z", "!"})
	n, err := cfg.ModifySection(frr.Edit{Start: "a", Stop: "!", Replacement: []string{"a", "x"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "x", "!", "a", "x", "!"}, cfg.Lines())
}

func TestModifySectionUntouchedLinesKeepOrder(t *testing.T) {
	cfg := frr.FromLines(vrfConfig)
	_, err := cfg.ModifySection(frr.Edit{Start: `interface .* vrf \w+`, RemoveStopMark: true})
	require.NoError(t, err)
	assert.Equal(t, concat(vrfConfig[:9], vrfConfig[13:16], vrfConfig[19:]), cfg.Lines())
}

func TestModifySectionErrors(t *testing.T) {
	cfg := frr.FromLines(isisConfig)

	_, err := cfg.ModifySection(frr.Edit{Start: "interface (eth0"})
	require.ErrorIs(t, err, frr.ErrInvalidPattern)

	_, err = cfg.ModifySection(frr.Edit{Start: "interface eth0", Stop: "[!"})
	require.ErrorIs(t, err, frr.ErrInvalidPattern)

	_, err = cfg.ModifySection(frr.Edit{Start: "interface eth0", Count: -1})
	require.ErrorIs(t, err, frr.ErrInvalidArgument)

	assert.False(t, cfg.Changed())
}

func TestAddBefore(t *testing.T) {
	cfg := frr.FromLines([]string{"interface eth0", "interface eth1"})
	ok, err := cfg.AddBefore("interface eth1", []string{"new line"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"interface eth0", "new line", "interface eth1"}, cfg.Lines())

	cfg = frr.FromLines([]string{"interface eth0", "line vty"})
	ok, err = cfg.AddBefore("interface eth1", []string{"new line"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"interface eth0", "line vty"}, cfg.Lines())
	assert.False(t, cfg.Changed())
}

func TestAddBeforeRouterSection(t *testing.T) {
	cfg := frr.FromLines(isisConfig)
	ok, err := cfg.AddBefore("line vty", []string{"router bgp 65000", "!"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, concat(isisConfig[:23], []string{"router bgp 65000", "!", "line vty"}), cfg.Lines())

	_, err = cfg.AddBefore("line (vty", nil)
	assert.ErrorIs(t, err, frr.ErrInvalidPattern)
}

func TestNew(t *testing.T) {
	cfg, err := frr.New("hostname r1\n!\nline vty")
	require.NoError(t, err)
	assert.Equal(t, []string{"hostname r1", "!", "line vty"}, cfg.Lines())
	assert.Equal(t, cfg.Lines(), cfg.Original())

	cfg, err = frr.New([]string{"hostname r1"})
	require.NoError(t, err)
	assert.Equal(t, "hostname r1", cfg.String())

	_, err = frr.New(42)
	assert.ErrorIs(t, err, frr.ErrInvalidArgument)

	_, err = frr.New(map[string]string{})
	assert.ErrorIs(t, err, frr.ErrInvalidArgument)
}

func TestConfigDoesNotAliasCaller(t *testing.T) {
	input := []string{"interface eth0", " ip address 10.0.0.1/24", "!"}
	cfg := frr.FromLines(input)

	input[0] = "interface eth9"
	assert.Equal(t, "interface eth0", cfg.Lines()[0])
	assert.Equal(t, "interface eth0", cfg.Original()[0])

	lines := cfg.Lines()
	lines[0] = "changed"
	assert.Equal(t, "interface eth0", cfg.Lines()[0])
}

func TestChangedAndReset(t *testing.T) {
	cfg := frr.FromLines(isisConfig)
	assert.False(t, cfg.Changed())

	_, err := cfg.ModifySection(frr.Edit{Start: "line vty", Stop: ".*"})
	require.NoError(t, err)
	assert.False(t, cfg.Changed(), "no stop line after line vty, nothing removed")

	_, err = cfg.ModifySection(frr.Edit{Start: "interface eth0"})
	require.NoError(t, err)
	assert.True(t, cfg.Changed())

	cfg.Reset()
	assert.False(t, cfg.Changed())
	assert.Equal(t, isisConfig, cfg.Lines())
}

func TestRendering(t *testing.T) {
	cfg := frr.FromLines([]string{"hostname r1", "!"})
	assert.Equal(t, "hostname r1\n!", cfg.String())
	assert.Equal(t, `frr.Config("hostname r1\n!")`, fmt.Sprintf("%#v", cfg))
}

func TestToLines(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    []string
		wantErr bool
	}{
		{name: "string", in: "a\nb", want: []string{"a", "b"}},
		{name: "empty string", in: "", want: []string{""}},
		{name: "slice", in: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "any slice", in: []any{"a", "b"}, want: []string{"a", "b"}},
		{name: "any slice with number", in: []any{"a", 1}, wantErr: true},
		{name: "number", in: 3, wantErr: true},
		{name: "nil", in: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := frr.ToLines(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, frr.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchLine(t *testing.T) {
	ok, err := frr.MatchLine("interface eth0 vrf RED", "interface eth0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = frr.MatchLine(" interface eth0", "interface eth0")
	require.NoError(t, err)
	assert.False(t, ok, "match is anchored at the first character")

	ok, err = frr.MatchLine("interface eth0 vrf RED", "interface eth0$")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = frr.MatchLine("x", "(")
	assert.ErrorIs(t, err, frr.ErrInvalidPattern)
}

func TestRequireFound(t *testing.T) {
	assert.NoError(t, frr.RequireFound(2, "interface eth0"))
	assert.ErrorIs(t, frr.RequireFound(0, "interface eth0"), frr.ErrSectionNotFound)
}

func TestUnbalancedPatternRejected(t *testing.T) {
	_, _, err := frr.FindFirstBlock(isisConfig, "a)(b", "!", 0)
	assert.ErrorIs(t, err, frr.ErrInvalidPattern)
}

func TestModifySectionIdenticalReplacement(t *testing.T) {
	cfg := frr.FromLines(isisConfig)
	n, err := cfg.ModifySection(frr.Edit{Start: "router isis SR", Replacement: isisRouterSection})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, cfg.Changed())
}
