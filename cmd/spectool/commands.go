package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectra/kit"
	"github.com/cwbudde/algo-spectra/ndim"
	"github.com/cwbudde/algo-spectra/spectrum"
	"github.com/cwbudde/algo-spectra/stats"
)

var (
	deriveOrder     int
	deriveChannel   int
	spectrumChannel int
	uniqueTolerance float64
	smoothHalfwidth int
)

var deriveCmd = &cobra.Command{
	Use:   "derive <file>",
	Short: "Numerical derivative of a channel with respect to the coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadColumns(args[0])
		if err != nil {
			return err
		}
		ch, err := d.channelByFlag(deriveChannel)
		if err != nil {
			return err
		}
		dy, err := kit.Diff(d.x, ch, deriveOrder)
		if err != nil {
			return err
		}
		return writeColumns(os.Stdout, d.x, dy)
	},
}

var spectrumCmd = &cobra.Command{
	Use:   "spectrum <file>",
	Short: "Magnitude spectrum of a channel over its conjugate axis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadColumns(args[0])
		if err != nil {
			return err
		}
		ch, err := d.channelByFlag(spectrumChannel)
		if err != nil {
			return err
		}
		xi := ndim.FromSlice(d.x, len(d.x))
		yi := ndim.FromSlice(ch, len(ch))
		freq, out, err := kit.FFT(xi, yi, 0)
		if err != nil {
			return err
		}
		return writeColumns(os.Stdout, freq, spectrum.Magnitude(out.Data()))
	},
}

var uniqueCmd = &cobra.Command{
	Use:   "unique <file>",
	Short: "Unique coordinate values within tolerance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadColumns(args[0])
		if err != nil {
			return err
		}
		return writeColumns(os.Stdout, kit.Unique(d.x, uniqueTolerance))
	},
}

var smoothCmd = &cobra.Command{
	Use:   "smooth <file>",
	Short: "Running-average smoothing of every channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadColumns(args[0])
		if err != nil {
			return err
		}
		cols := make([][]float64, 0, len(d.channels)+1)
		cols = append(cols, d.x)
		for _, ch := range d.channels {
			cols = append(cols, kit.Smoothed1D(ch, smoothHalfwidth))
		}
		return writeColumns(os.Stdout, cols...)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Drop rows that are NaN in any column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadColumns(args[0])
		if err != nil {
			return err
		}
		cols := append([][]float64{d.x}, d.channels...)
		return writeColumns(os.Stdout, kit.RemoveNaNs1D(cols)...)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Descriptive statistics per channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadColumns(args[0])
		if err != nil {
			return err
		}

		tw := tablewriter.NewWriter(os.Stdout)
		tw.SetHeader([]string{"CHANNEL", "COUNT", "NANS", "MEAN", "MIN", "MAX", "RMS", "VARIANCE"})
		tw.SetBorder(true)
		tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		tw.SetAlignment(tablewriter.ALIGN_RIGHT)
		tw.SetAutoWrapText(false)

		for i, ch := range d.channels {
			s := stats.Describe(ch)
			tw.Append([]string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", s.Count),
				fmt.Sprintf("%d", s.NaNs),
				fmt.Sprintf("%.6g", s.Mean),
				fmt.Sprintf("%.6g", s.Min),
				fmt.Sprintf("%.6g", s.Max),
				fmt.Sprintf("%.6g", s.RMS),
				fmt.Sprintf("%.6g", s.Variance),
			})
		}
		tw.Render()
		return nil
	},
}

func init() {
	deriveCmd.Flags().IntVar(&deriveOrder, "order", 1, "order of differentiation")
	deriveCmd.Flags().IntVar(&deriveChannel, "channel", 1, "1-based channel column to derive")
	spectrumCmd.Flags().IntVar(&spectrumChannel, "channel", 1, "1-based channel column to transform")
	uniqueCmd.Flags().Float64Var(&uniqueTolerance, "tolerance", kit.DefaultTolerance, "absolute uniqueness tolerance")
	smoothCmd.Flags().IntVar(&smoothHalfwidth, "halfwidth", kit.DefaultSmoothWidth, "smoothing half-window in samples")

	rootCmd.AddCommand(deriveCmd, spectrumCmd, uniqueCmd, smoothCmd, cleanCmd, statsCmd)
}
