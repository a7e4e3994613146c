package generator

import "github.com/toyz/geomtyper/internal/models"

// FragmentRenderer renders the four cut-and-paste passes for an entry sequence
type FragmentRenderer interface {
	RenderHeader(entries []models.Entry) (string, error)
	RenderInit(entries []models.Entry) (string, error)
	RenderUnits(entries []models.Entry) (string, error)
	RenderPrint(entries []models.Entry) (string, error)
}
