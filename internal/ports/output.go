package ports

import "alias-profiles/internal/types"

type OutputPort interface {
	WriteResolution(path string, output types.ResolutionOutput) error
}
