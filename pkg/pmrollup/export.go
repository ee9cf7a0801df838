package pmrollup

import (
	"fmt"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/output"
)

// Document builds the export view of res.
func (res *Result) Document() *output.Document {
	return output.Build(res.Registry, res.Timesheets)
}

// Export writes res to path in the given format.
func Export(res *Result, path string, format output.Format, pretty bool) error {
	data, err := output.Marshal(res.Document(), format, pretty)
	if err != nil {
		return NewLoadError("export", path, "", fmt.Errorf("serialization failed: %w", err))
	}
	if err := output.WriteFile(path, data); err != nil {
		return NewLoadError("export", path, "", fmt.Errorf("%w: %v", ErrSinkWrite, err))
	}
	return nil
}
