package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute runs root with args, typically os.Args[1:], so that negative
// numbers can be passed as positional values ("convert -40 f c").
func Execute(ctx context.Context, root *cobra.Command, args []string) error {
	if args == nil {
		args = []string{}
	}
	root.SetArgs(protectNegativeNumbers(root, args))
	return root.ExecuteContext(ctx)
}

// protectNegativeNumbers keeps positional values such as "-40" from being
// read as shorthand flags. When one is present, the arguments are reordered
// as subcommand path, flags, "--", positionals. Flag values ("--value -40")
// stay attached to their flag. Arguments without a negative positional are
// returned unchanged.
func protectNegativeNumbers(root *cobra.Command, args []string) []string {
	cmd := root
	var path, flags, positionals []string
	protect := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			positionals = append(positionals, arg)
			protect = true
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			if len(positionals) == 0 {
				if sub := findSubcommand(cmd, arg); sub != nil {
					cmd = sub
					path = append(path, arg)
					continue
				}
			}
			positionals = append(positionals, arg)
		}
	}

	if !protect {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, path...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// takesValue reports whether flag arg consumes the next argument as its value.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	switch {
	case strings.HasPrefix(arg, "--"):
		f = lookupFlag(cmd, strings.TrimPrefix(arg, "--"), false)
	case len(arg) == 2:
		f = lookupFlag(cmd, arg[1:], true)
	default:
		return false
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(cmd *cobra.Command, name string, shorthand bool) *pflag.Flag {
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		var f *pflag.Flag
		if shorthand {
			f = fs.ShorthandLookup(name)
		} else {
			f = fs.Lookup(name)
		}
		if f != nil {
			return f
		}
	}
	return nil
}

func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}
