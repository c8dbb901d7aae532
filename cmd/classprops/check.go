package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/t14raptor/classprops/transform/classprops"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate an options file",
		Long: `Load the options file given with --config and print the class selector
and the fields it adds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.loadOptions()
			if err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), classprops.New(opts))
			return nil
		},
	}
}

func describe(w io.Writer, plugin *classprops.Plugin) {
	fmt.Fprintf(w, "all: %t\n", plugin.All())
	fmt.Fprintf(w, "classes: %s\n", nameList(plugin.Classes()))
	fmt.Fprintf(w, "superClasses: %s\n", nameList(plugin.SuperClasses()))

	props := plugin.Props()
	if len(props) == 0 {
		fmt.Fprintln(w, "props: none")
		return
	}
	fmt.Fprintln(w, "props:")
	for _, spec := range props {
		fmt.Fprintf(w, "  %s\n", describeMember(spec))
	}
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

func describeMember(spec classprops.MemberSpec) string {
	var b strings.Builder
	if spec.Static {
		b.WriteString("static ")
	}
	b.WriteString(strconv.Quote(spec.Key))

	switch value := spec.Value.(type) {
	case nil:
	case classprops.Snippet:
		if classprops.BuildMember(spec, nil, nil).Initializer == nil {
			fmt.Fprintf(&b, " (ignored value %q: not a single expression)", string(value))
		} else {
			fmt.Fprintf(&b, " = %s", value)
		}
	case classprops.ClassName:
		b.WriteString(" = <class name>")
	case classprops.Func:
		b.WriteString(" = <func>")
	case classprops.Unsupported:
		fmt.Fprintf(&b, " (ignored value of type %T)", value.Raw)
	}
	return b.String()
}
