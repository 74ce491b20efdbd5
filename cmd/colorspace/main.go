// Copyright (c) 2026, The Colorspace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorspace converts and inspects colors from the command
// line, using the conversion engine of the colorspace package.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tristimulus/colorspace"
)

var rootCmd = &cobra.Command{
	Use:   "colorspace",
	Short: "Convert and inspect colors across CIE and display color spaces",
	Long: `Parse color literals (hex, rgb(), X11 names) and convert them between
sRGB, HSV, HLS, CIE XYZ, LAB, LUV and the polar LCH spaces.`,
	SilenceUsage: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Parse a color literal and print it in another color space",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var hexCmd = &cobra.Command{
	Use:   "hex <color>",
	Short: "Print the #RRGGBB form of a color literal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorspace.FromString(args[0])
		if err != nil {
			return err
		}
		fmt.Println(c.Hex())
		return nil
	},
}

var swatchCmd = &cobra.Command{
	Use:   "swatch <color>...",
	Short: "Show terminal swatches for the given color literals",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSwatch,
}

var namesCmd = &cobra.Command{
	Use:   "names [substring]",
	Short: "List the X11 named colors, optionally filtered by substring",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNames,
}

func init() {
	convertCmd.Flags().StringP("to", "t", "rgb",
		"target color space (rgb, hsv, hls, xyz, lab, lchab, luv, lchuv)")
	convertCmd.Flags().StringP("white", "w", "D65",
		"reference white point for LAB/LUV conversions (A, B, C, D50, D55, D65, D75, E, F2, F7, F11)")
	rootCmd.AddCommand(convertCmd, hexCmd, swatchCmd, namesCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colorspace.FromString(args[0])
	if err != nil {
		return err
	}
	wname, _ := cmd.Flags().GetString("white")
	wp, ok := colorspace.WhitePoints[strings.ToUpper(wname)]
	if !ok {
		return fmt.Errorf("unknown white point %q", wname)
	}
	to, _ := cmd.Flags().GetString("to")
	out, err := convertTo(c, strings.ToLower(to), wp)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func convertTo(c colorspace.Color, space string, wp colorspace.WhitePoint) (string, error) {
	switch space {
	case "rgb":
		return c.RGB(wp).String(), nil
	case "hsv":
		return c.HSV(wp).String(), nil
	case "hls":
		return c.HLS(wp).String(), nil
	case "xyz":
		return c.XYZ(wp).String(), nil
	case "lab":
		return c.LAB(wp).String(), nil
	case "lchab":
		return c.LCHab(wp).String(), nil
	case "luv":
		return c.LUV(wp).String(), nil
	case "lchuv":
		return c.LCHuv(wp).String(), nil
	}
	return "", fmt.Errorf("unknown color space %q", space)
}

func runSwatch(cmd *cobra.Command, args []string) error {
	profile := termenv.ColorProfile()
	for _, arg := range args {
		c, err := colorspace.FromString(arg)
		if err != nil {
			return err
		}
		hex := c.Hex()
		block := termenv.String("        ").Background(profile.Color(hex))
		fmt.Printf("%s  %s  %s\n", block, hex, arg)
	}
	return nil
}

func runNames(cmd *cobra.Command, args []string) error {
	sub := ""
	if len(args) == 1 {
		sub = strings.ToLower(args[0])
	}
	keys := make([]string, 0, len(colorspace.Names))
	for name := range colorspace.Names {
		if sub == "" || strings.Contains(name, sub) {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	for _, name := range keys {
		c := colorspace.MustFromName(name)
		fmt.Printf("%s  %s\n", c.Hex(), name)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
