package token

// universe maps spelled-out names to their predeclared basic tokens.
// Multi-word names ("long long", "unsigned int") use single spaces.
var universe map[string]*Basic

func init() {
	universe = make(map[string]*Basic, len(Typ))
	for _, b := range Typ {
		if b == nil {
			continue
		}
		universe[b.name] = b
	}
	// Accepted spelling aliases.
	universe["signed char"] = Typ[Char]
	universe["signed short"] = Typ[Short]
	universe["signed int"] = Typ[Int]
	universe["signed long"] = Typ[Long]
	universe["signed long long"] = Typ[LongLong]
	universe["unsigned"] = Typ[UInt]
	universe["signed"] = Typ[Int]
}

// Lookup returns the predeclared basic token with the given name,
// or nil if the name is not a known token name.
func Lookup(name string) *Basic {
	return universe[name]
}

// Names returns the canonical names of all predeclared basic tokens,
// in kind order.
func Names() []string {
	names := make([]string, 0, len(Typ))
	for _, b := range Typ {
		if b == nil {
			continue
		}
		names = append(names, b.name)
	}
	return names
}
