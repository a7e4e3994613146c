package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/geomtyper/internal/config"
	"github.com/toyz/geomtyper/internal/models"
	"github.com/toyz/geomtyper/internal/parser"
	"github.com/toyz/geomtyper/internal/templates"
)

func generateFrom(t *testing.T, input string) (string, error) {
	t.Helper()

	cfg := config.Default()
	result, err := parser.NewParser(parser.Options{DefaultUnit: cfg.DefaultUnit}).ParseReader("geom.fcl", strings.NewReader(input))
	if err != nil {
		return "", err
	}

	renderer, err := templates.NewRenderer(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	g := NewGenerator(renderer, Options{StreamHeader: cfg.Dialect.StreamHeader})
	if err := g.Generate(result.Entries, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func TestEndToEndGeometryFile(t *testing.T) {
	input := `BEGIN_PROLOG
// station geometry
station: {
  halfLength: 25
  position: [1,2,3] // cm
  enableVis: true
}
END_PROLOG
`
	out, err := generateFrom(t, input)
	require.NoError(t, err)

	expected := `-- CUT AND PASTE BELOW into class member data in header file --
const double halfLength;
std::vector<double> position;
const bool enableVis;
-- CUT AND PASTE BELOW into constructor initialization list --
halfLength( p.get<double>("halfLength") * mm),
position( p.get<std::vector<double>>("position") ),
enableVis( p.get<bool>("enableVis") ),
-- CUT AND PASTE BELOW into constructor body --
for (auto& entry : position ) { entry *= cm; }
-- CUT AND PASTE BELOW into the print method --
-- be sure to #include <sstream> --
std::ostringstream oss;
oss << "  halfLength=" << halfLength << "\n";
oss << "  position= "; for (auto entry : position) { oss << " " << entry; }; oss << "\n";
oss << "  enableVis=" << enableVis << "\n";
mf::LogInfo("CATEGORY") << oss.str();
`
	assert.Equal(t, expected, out)
}

func TestEndToEndStructuralLinesProduceNothing(t *testing.T) {
	out, err := generateFrom(t, "{\n// note\nPROLOG\n}\n")
	require.NoError(t, err)

	for _, section := range AllSections() {
		assert.Contains(t, out, section.Banner())
	}
	assert.NotContains(t, out, "note")
	assert.NotContains(t, out, "PROLOG")
	assert.NotContains(t, out, "const")
}

func TestEndToEndMalformedLineStopsGeneration(t *testing.T) {
	out, err := generateFrom(t, "a: 1\njustanerror\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingSeparator)
	assert.Empty(t, out)
}
