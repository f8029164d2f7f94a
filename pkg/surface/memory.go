package surface

// Memory is an in-process display surface. It backs headless runs, scripted
// replays and tests.
type Memory struct {
	controls map[string]*memoryControl
}

type memoryControl struct {
	id       string
	kind     Kind
	value    string
	handlers []func()
}

func NewMemory() *Memory {
	return &Memory{controls: make(map[string]*memoryControl)}
}

// Add registers a control. Adding an existing id replaces it.
func (m *Memory) Add(id string, kind Kind) *Memory {
	m.controls[id] = &memoryControl{id: id, kind: kind}
	return m
}

func (m *Memory) Lookup(id string, kind Kind) (Control, error) {
	ctrl, ok := m.controls[id]
	if !ok {
		return Check(id, nil, kind)
	}
	return Check(id, ctrl, kind)
}

// Type simulates a user edit: the value changes and input handlers run.
func (m *Memory) Type(id, text string) error {
	ctrl, err := m.Lookup(id, KindInput)
	if err != nil {
		return err
	}
	c := ctrl.(*memoryControl)
	c.value = text
	c.notify()
	return nil
}

// Activate simulates pressing a button.
func (m *Memory) Activate(id string) error {
	ctrl, err := m.Lookup(id, KindButton)
	if err != nil {
		return err
	}
	ctrl.(*memoryControl).notify()
	return nil
}

// Text returns the current value of any control, or "" when it does not exist.
func (m *Memory) Text(id string) string {
	if c, ok := m.controls[id]; ok {
		return c.value
	}
	return ""
}

func (c *memoryControl) ID() string { return c.id }
func (c *memoryControl) Kind() Kind { return c.kind }
func (c *memoryControl) Value() string { return c.value }
func (c *memoryControl) SetValue(v string) { c.value = v }
func (c *memoryControl) Subscribe(h func()) { c.handlers = append(c.handlers, h) }

func (c *memoryControl) notify() {
	for _, h := range c.handlers {
		h()
	}
}
