package variant

import (
	"fmt"
	"sort"
	"strings"
)

func commandIndexFor(cmds *Commands) map[string]map[string][]string {
	return map[string]map[string][]string{
		"package": {
			"update_db":   cmds.Package.UpdateDB,
			"install":     cmds.Package.Install,
			"list_all":    cmds.Package.ListAll,
			"purge":       cmds.Package.Purge,
			"remove":      cmds.Package.Remove,
			"remove_impl": cmds.Package.RemoveImpl,
		},
		"pkgfile": {
			"dep_query": cmds.PkgFile.DepQuery,
			"install":   cmds.PkgFile.Install,
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (v *Variant) commands() map[string]map[string][]string {
	idx := v.commandIndex
	if idx == nil {
		idx = commandIndexFor(&v.Commands)
	}
	return idx
}

// Command resolves a dotted category.operation path to the command
// template for this variant. The caller appends its own arguments to
// the returned slice without modifying it.
func (v *Variant) Command(path string) ([]string, error) {
	parts := strings.Split(path, ".")
	index := v.commands()

	ops, ok := index[parts[0]]
	if !ok {
		return nil, fmt.Errorf(
			"%w: unknown component %q, should be one of: %s",
			ErrCommandPath, parts[0], strings.Join(sortedKeys(index), " "))
	}
	if len(parts) == 1 {
		return nil, fmt.Errorf(
			"%w: incomplete path %q, should continue with one of: %s",
			ErrCommandPath, path, strings.Join(sortedKeys(ops), " "))
	}

	cmd, ok := ops[parts[1]]
	if !ok {
		return nil, fmt.Errorf(
			"%w: unknown component %q, should be one of: %s",
			ErrCommandPath, parts[1], strings.Join(sortedKeys(ops), " "))
	}
	if len(parts) > 2 {
		return nil, fmt.Errorf(
			"%w: trailing components after %s.%s in %q",
			ErrCommandPath, parts[0], parts[1], path)
	}
	return cmd, nil
}

// EachCommand invokes fn for every category.operation pair in a stable
// sorted order.
func (v *Variant) EachCommand(fn func(category, operation string, cmd []string)) {
	index := v.commands()
	for _, category := range sortedKeys(index) {
		ops := index[category]
		for _, operation := range sortedKeys(ops) {
			fn(category, operation, ops[operation])
		}
	}
}
