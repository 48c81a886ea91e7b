package pipeline

import (
	"fmt"

	"github.com/matzehuels/labelrepel/pkg/render/svg"
	"github.com/matzehuels/labelrepel/pkg/scene"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(l scene.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = svg.Render(l, svgOptions(opts)...)
		case FormatJSON:
			data, err := scene.MarshalLayout(l)
			if err != nil {
				return nil, fmt.Errorf("render %s: %w", format, err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
	}

	return artifacts, nil
}

func svgOptions(opts Options) []svg.Option {
	var out []svg.Option
	if opts.Anchors {
		out = append(out, svg.WithAnchors())
	}
	if opts.Leaders {
		out = append(out, svg.WithLeaders())
	}
	if opts.Conflicts {
		out = append(out, svg.WithConflicts())
	}
	return out
}
