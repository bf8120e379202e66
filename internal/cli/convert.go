package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/internal/logging"
	"github.com/rshade/unitconv/internal/units"
)

// convertJSON is the --output json form of a conversion.
type convertJSON struct {
	Category  string  `json:"category"`
	FromValue float64 `json:"fromValue"`
	FromUnit  string  `json:"fromUnit"`
	ToValue   float64 `json:"toValue"`
	ToUnit    string  `json:"toUnit"`
	Formatted string  `json:"formatted"`
}

func newConvertCmd() *cobra.Command {
	var (
		categoryID string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between two units",
		Long: `Convert a value between two units of one category.

Unit ids are matched leniently: "KM", "km/h" and "m2" resolve to km, kmh and m².
Without --category, the first category containing both units is used.`,
		Example: `  unitconv convert 100 c f
  unitconv convert 3.5 ft m
  unitconv convert 1 acre m2 --category area --output json`,
		Args: usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeConvert(cmd, args, categoryID, output)
		},
	}

	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id (inferred from the units when omitted)")
	addOutputFlag(cmd, &output)

	return cmd
}

func executeConvert(cmd *cobra.Command, args []string, categoryID, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	value, err := conversion.ParseValue(args[0])
	if errors.Is(err, conversion.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return &UsageError{Err: err}
	}

	category, from, to, err := resolveConversion(categoryID, args[1], args[2])
	if err != nil {
		return err
	}

	result, err := conversion.NewEngine(category).Evaluate(value, from, to)
	if err != nil {
		return &UsageError{Err: err}
	}

	log.Debug().
		Str("category", result.Category).
		Str("from", result.FromUnit).
		Str("to", result.ToUnit).
		Float64("to_value", result.ToValue).
		Msg("conversion evaluated")

	recordConversion(ctx, result)

	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), convertJSON{
			Category:  result.Category,
			FromValue: finiteOrZero(result.FromValue),
			FromUnit:  result.FromUnit,
			ToValue:   result.ToValue,
			ToUnit:    result.ToUnit,
			Formatted: conversion.FormatNumber(result.ToValue),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
		conversion.FormatNumber(result.FromValue), unitSymbol(category, result.FromUnit),
		conversion.FormatNumber(result.ToValue), unitSymbol(category, result.ToUnit))
	return nil
}

// resolveConversion picks the category and canonical unit ids for a
// conversion. Tokens that do not resolve are passed through unchanged so the
// engine reports them as unknown units.
func resolveConversion(categoryID, fromToken, toToken string) (units.Category, string, string, error) {
	if categoryID != "" {
		c, err := lookupCategory(categoryID)
		if err != nil {
			return units.Category{}, "", "", err
		}
		return c, resolveToken(c, fromToken), resolveToken(c, toToken), nil
	}

	c, from, to, ok := units.InferCategory(fromToken, toToken)
	if !ok {
		return units.Category{}, "", "", &UsageError{Err: fmt.Errorf(
			"%w: no category has both %q and %q (use --category to choose one)",
			conversion.ErrUnknownUnit, fromToken, toToken)}
	}
	return c, from, to, nil
}

func resolveToken(c units.Category, token string) string {
	if id, ok := units.ResolveUnitID(c, token); ok {
		return id
	}
	return token
}

func unitSymbol(c units.Category, id string) string {
	if u, ok := c.Unit(id); ok {
		return u.Symbol
	}
	return id
}
