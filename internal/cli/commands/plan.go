package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlabel/grid"
	"github.com/katalvlaran/lvlabel/internal/cli/output"
)

// axisResult is the JSON/YAML shape of the axis command.
type axisResult struct {
	Name   string   `json:"name" yaml:"name"`
	Size   int      `json:"size" yaml:"size"`
	Labels []string `json:"labels" yaml:"labels"`
}

// NewAxisCommand creates the axis command.
func NewAxisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "axis <x|y>",
		Short: "List the labels of one plan axis",
		Long: `Build one axis from the plan configuration and list its labels in
position order. Custom ranges come first; the remaining positions use the
axis default labels.`,
		Example: `  lvlabel axis x
  lvlabel axis y --config plan.yaml -o json`,
		ValidArgs: []string{"x", "y", "X", "Y"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			ax, err := cmdCtx.Cfg.Axis(args[0])
			if err != nil {
				return err
			}
			labels, err := ax.Labels()
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("built axis", "axis", ax.Name(), "size", ax.Size(), "ranges", len(ax.Ranges()))

			rows := make([][]string, len(labels))
			for i, l := range labels {
				rows[i] = []string{strconv.Itoa(i + 1), l}
			}
			return cmdCtx.Renderer.Render(output.Result{
				Title:  "Axis " + ax.Name(),
				Header: []string{"Position", "Label"},
				Rows:   rows,
				Data:   axisResult{Name: ax.Name(), Size: ax.Size(), Labels: labels},
			})
		},
	}
}

// gridResult is the JSON/YAML shape of the grid command.
type gridResult struct {
	Width   int      `json:"width" yaml:"width"`
	Height  int      `json:"height" yaml:"height"`
	XLabels []string `json:"x_labels" yaml:"x_labels"`
	YLabels []string `json:"y_labels" yaml:"y_labels"`
}

// NewGridCommand creates the grid command.
func NewGridCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Show the labelled plan",
		Long: `Build both axes from the plan configuration and print the grid with X
labels across the top and Y labels down the side.`,
		Example: `  lvlabel grid
  lvlabel grid --x-size 20 --y-size 5 --config plan.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			plan, err := cmdCtx.Cfg.Plan()
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("built plan", "width", plan.Width, "height", plan.Height)

			xs, ys := plan.XLabels(), plan.YLabels()
			header := append([]string{""}, xs...)
			rows := make([][]string, len(ys))
			for i, yl := range ys {
				row := make([]string, 0, len(xs)+1)
				row = append(row, yl)
				for range xs {
					row = append(row, "·")
				}
				rows[i] = row
			}
			return cmdCtx.Renderer.Render(output.Result{
				Title:  strconv.Itoa(plan.Width) + "×" + strconv.Itoa(plan.Height),
				Header: header,
				Rows:   rows,
				Data:   gridResult{Width: plan.Width, Height: plan.Height, XLabels: xs, YLabels: ys},
			})
		},
	}
}

// cellRow is the JSON/YAML shape of one cell.
type cellRow struct {
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
	XLabel string `json:"x_label" yaml:"x_label"`
	YLabel string `json:"y_label" yaml:"y_label"`
}

func renderCells(r *output.Renderer, title string, cells []grid.Cell) error {
	rows := make([][]string, len(cells))
	data := make([]cellRow, len(cells))
	for i, c := range cells {
		rows[i] = []string{c.String(), c.XLabel, c.YLabel}
		data[i] = cellRow{X: c.X, Y: c.Y, XLabel: c.XLabel, YLabel: c.YLabel}
	}
	return r.Render(output.Result{
		Title:  title,
		Header: []string{"Cell", "X", "Y"},
		Rows:   rows,
		Data:   data,
	})
}

// NewLocateCommand creates the locate command.
func NewLocateCommand() *cobra.Command {
	var (
		neighbors bool
		diagonal  bool
	)
	cmd := &cobra.Command{
		Use:   "locate <x-label> <y-label>",
		Short: "Find a cell by its axis labels",
		Long: `Resolve a pair of axis labels to the 1-based cell position. Labels are
matched exactly first, then case-insensitively.`,
		Example: `  lvlabel locate 02B C
  lvlabel locate 3 B --neighbors --diagonal`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			plan, err := cmdCtx.Cfg.Plan()
			if err != nil {
				return err
			}
			x, y, err := plan.Locate(args[0], args[1])
			if err != nil {
				return err
			}
			cell, err := plan.Cell(x, y)
			if err != nil {
				return err
			}
			cells := []grid.Cell{cell}
			if neighbors {
				conn := grid.Conn4
				if diagonal {
					conn = grid.Conn8
				}
				nb, err := plan.Neighbors(x, y, conn)
				if err != nil {
					return err
				}
				cells = append(cells, nb...)
			}
			cmdCtx.Logger.Debug("located cell", "cell", cell.String(), "neighbors", len(cells)-1)
			return renderCells(cmdCtx.Renderer, args[0]+" / "+args[1], cells)
		},
	}
	cmd.Flags().BoolVarP(&neighbors, "neighbors", "n", false, "Also list the adjacent cells")
	cmd.Flags().BoolVarP(&diagonal, "diagonal", "d", false, "Count diagonal cells as adjacent")
	return cmd
}

// NewSpanCommand creates the span command.
func NewSpanCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "span <x1> <y1> <x2> <y2>",
		Short:   "List the cells of a labelled rectangle",
		Long:    `List every cell of the rectangle whose opposite corners carry the given labels, in row-major order.`,
		Example: `  lvlabel span 02A B 4 D`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			plan, err := cmdCtx.Cfg.Plan()
			if err != nil {
				return err
			}
			x1, y1, err := plan.Locate(args[0], args[1])
			if err != nil {
				return err
			}
			x2, y2, err := plan.Locate(args[2], args[3])
			if err != nil {
				return err
			}
			cells, err := plan.Span(grid.Cell{X: x1, Y: y1}, grid.Cell{X: x2, Y: y2})
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("spanned cells", "count", len(cells))
			return renderCells(cmdCtx.Renderer, args[0]+args[1]+":"+args[2]+args[3], cells)
		},
	}
}
