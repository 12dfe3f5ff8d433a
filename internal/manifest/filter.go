package manifest

import "strings"

// FilterByPrefix returns a new Tables holding only the rows whose own
// name carries the given prefix. Ports are kept when either the port or
// its module matches, so a module's port list survives filtering by the
// module name.
func FilterByPrefix(tables Tables, prefix string) Tables {
	out := emptyTables()

	for _, row := range tables.Modules {
		if strings.HasPrefix(row.Name, prefix) {
			out.Modules = append(out.Modules, row)
		}
	}
	for _, row := range tables.Ports {
		if strings.HasPrefix(row.Name, prefix) || strings.HasPrefix(row.Module, prefix) {
			out.Ports = append(out.Ports, row)
		}
	}
	for _, row := range tables.Instances {
		if strings.HasPrefix(row.Name, prefix) {
			out.Instances = append(out.Instances, row)
		}
	}

	return out
}

func emptyTables() Tables {
	return Tables{
		Modules:   []ModuleRow{},
		Ports:     []PortRow{},
		Instances: []InstanceRow{},
	}
}
