package monitor

import "sync"

// playerDirectory maps unique bus names (":1.45") to the well-known MPRIS
// names players register ("org.mpris.MediaPlayer2.vlc"). Signals arrive from
// the unique name, while commands and notifications use the well-known one.
type playerDirectory struct {
	mu     sync.RWMutex
	owners map[string]string
}

func newPlayerDirectory() *playerDirectory {
	return &playerDirectory{owners: make(map[string]string)}
}

func (d *playerDirectory) bind(unique, name string) {
	d.mu.Lock()
	d.owners[unique] = name
	d.mu.Unlock()
}

func (d *playerDirectory) unbind(unique string) {
	d.mu.Lock()
	delete(d.owners, unique)
	d.mu.Unlock()
}

// resolve falls back to the unique name for players we never saw register
func (d *playerDirectory) resolve(unique string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if name, ok := d.owners[unique]; ok {
		return name
	}
	return unique
}

func (d *playerDirectory) len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.owners)
}
