package directory

// Customer is a directory entry resolved by id. The engine only reads
// the directory; absence of an entry is not an error.
type Customer struct {
	ID   string
	Name string
}

// Product is a catalog entry resolved by id. BaseUnit is the stored unit
// label before any display remapping.
type Product struct {
	ID       string
	Name     string
	BaseUnit string
}
