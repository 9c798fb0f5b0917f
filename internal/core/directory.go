package core

// Directory owns the set of rooms and their membership lists.
//
// Rooms and members are enumerated in insertion order so that repeated
// listings stay deterministic. The directory performs no locking; the hub
// serializes all access.
type Directory struct {
	defaultRoom string
	names       []string
	members     map[string][]string
}

// NewDirectory constructs a directory seeded with the default room.
func NewDirectory(defaultRoom string) *Directory {
	d := &Directory{
		defaultRoom: defaultRoom,
		members:     make(map[string][]string),
	}
	d.ensureRoom(defaultRoom)
	return d
}

// DefaultRoom returns the name of the always-present room.
func (d *Directory) DefaultRoom() string {
	return d.defaultRoom
}

// ensureRoom vivifies a room with an empty member list if absent.
func (d *Directory) ensureRoom(name string) {
	if _, ok := d.members[name]; ok {
		return
	}
	d.names = append(d.names, name)
	d.members[name] = nil
}

// Has reports whether a room currently exists.
func (d *Directory) Has(name string) bool {
	_, ok := d.members[name]
	return ok
}

// EnsureDefaultMembership adds the identity to the default room if absent.
// Idempotent; nearly every operation calls this first so that anyone who has
// ever contacted the system is discoverable in the default room.
func (d *Directory) EnsureDefaultMembership(identity string) {
	d.AddMember(d.defaultRoom, identity)
}

// AddMember inserts the identity into the room, creating the room if it does
// not exist yet. Returns true if the membership was newly added.
func (d *Directory) AddMember(room, identity string) bool {
	d.ensureRoom(room)
	for _, m := range d.members[room] {
		if m == identity {
			return false
		}
	}
	d.members[room] = append(d.members[room], identity)
	return true
}

// RemoveMember deletes the identity from the room's member list.
// Returns false when the identity was not a member (or the room is unknown).
func (d *Directory) RemoveMember(room, identity string) bool {
	list, ok := d.members[room]
	if !ok {
		return false
	}
	for i, m := range list {
		if m == identity {
			d.members[room] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Delete removes the room and returns its former member list.
// The default room cannot be deleted through the directory; callers enforce
// that before reaching here.
func (d *Directory) Delete(room string) ([]string, bool) {
	list, ok := d.members[room]
	if !ok {
		return nil, false
	}
	delete(d.members, room)
	for i, n := range d.names {
		if n == room {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	return list, true
}

// Rooms returns all existing room names in insertion order.
func (d *Directory) Rooms() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// RoomsOf returns the rooms whose member list contains the identity,
// in room insertion order.
func (d *Directory) RoomsOf(identity string) []string {
	var out []string
	for _, name := range d.names {
		for _, m := range d.members[name] {
			if m == identity {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// Members returns a copy of the room's member list.
func (d *Directory) Members(room string) []string {
	list := d.members[room]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// IsMember reports whether the identity is currently in the room.
func (d *Directory) IsMember(room, identity string) bool {
	for _, m := range d.members[room] {
		if m == identity {
			return true
		}
	}
	return false
}
