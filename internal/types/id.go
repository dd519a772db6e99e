// README: Opaque identifier shared by zones, spots and bookings.
package types

type ID string

func (id ID) String() string { return string(id) }

func (id ID) Empty() bool { return id == "" }
