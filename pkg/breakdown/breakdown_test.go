package breakdown_test

import (
	"strings"
	"testing"

	"fixmygame/backend/pkg/breakdown"

	"github.com/stretchr/testify/require"
)

func TestParse_HappyPath(t *testing.T) {
	text := "Probability Breakdown:\n" +
		"- Driver/software issue: 60%\n" +
		"- Overheating/thermal: 15%\n" +
		"- API conflict (DX11/DX12/Vulkan): 10%\n" +
		"- Power/PSU/unstable clocks: 10%\n" +
		"- Hardware failure: 5%"

	b := breakdown.Parse(text)
	require.NotNil(t, b)
	require.Len(t, b.All, 5)
	require.Equal(t, breakdown.Entry{Label: "Driver/software issue", Value: 60}, b.Top)
	require.Equal(t, 100, b.Sum())

	for i := 1; i < len(b.All); i++ {
		require.GreaterOrEqual(t, b.All[i-1].Value, b.All[i].Value)
	}
}

func TestParse_NoHeader(t *testing.T) {
	require.Nil(t, breakdown.Parse("Issue:\nThe game crashed.\n- Driver/software issue: 60%"))
	require.Nil(t, breakdown.Parse(""))
}

func TestParse_HeaderCaseAndIndentation(t *testing.T) {
	text := "Summary first.\n  probability breakdown: \n- Drivers: 70%\n- Hardware: 30%"

	b := breakdown.Parse(text)
	require.NotNil(t, b)
	require.Len(t, b.All, 2)
	require.Equal(t, "Drivers", b.Top.Label)
}

func TestParse_HeaderWithoutEntries(t *testing.T) {
	require.Nil(t, breakdown.Parse("Probability Breakdown:\nNothing here."))
	require.Nil(t, breakdown.Parse("Probability Breakdown:"))
}

func TestParse_SkipsMalformedBullets(t *testing.T) {
	text := "Probability Breakdown:\n" +
		"- Driver issue: 60%\n" +
		"- this bullet has no percentage\n" +
		"- Hardware failure: 40%\n" +
		"Most Likely Cause:\n" +
		"- Overheating: 99%"

	b := breakdown.Parse(text)
	require.NotNil(t, b)
	// The malformed bullet is skipped, the scan continues, and the first
	// non-bullet line ends the section before the trailing list.
	require.Len(t, b.All, 2)
	require.Equal(t, "Driver issue", b.Top.Label)
	require.Equal(t, 40, b.All[1].Value)
}

func TestParse_StopsAtFirstNonBullet(t *testing.T) {
	text := "Probability Breakdown:\n- Drivers: 80%\n\n- Hardware: 20%"

	b := breakdown.Parse(text)
	require.NotNil(t, b)
	require.Len(t, b.All, 1)
}

func TestParse_BoundedLookahead(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Probability Breakdown:\n")
	for i := 0; i < 30; i++ {
		sb.WriteString("- Cause: 1%\n")
	}

	b := breakdown.Parse(sb.String())
	require.NotNil(t, b)
	require.Len(t, b.All, 14)
}

func TestParse_StableSortForTies(t *testing.T) {
	text := "Probability Breakdown:\n" +
		"- First: 10%\n" +
		"- Second: 50%\n" +
		"- Third: 10%\n" +
		"- Fourth: 10%"

	b := breakdown.Parse(text)
	require.NotNil(t, b)
	require.Equal(t, []breakdown.Entry{
		{Label: "Second", Value: 50},
		{Label: "First", Value: 10},
		{Label: "Third", Value: 10},
		{Label: "Fourth", Value: 10},
	}, b.All)
}

func TestParse_LabelWithColons(t *testing.T) {
	b := breakdown.Parse("Probability Breakdown:\n- API conflict: DX12: 25%\n- Other: 75%")
	require.NotNil(t, b)
	require.Equal(t, "API conflict: DX12", b.All[1].Label)
}

func TestParse_DoesNotRequireSumOf100(t *testing.T) {
	b := breakdown.Parse("Probability Breakdown:\n- Drivers: 90%\n- Hardware: 90%")
	require.NotNil(t, b)
	require.Equal(t, 180, b.Sum())
}
