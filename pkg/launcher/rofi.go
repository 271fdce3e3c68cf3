package launcher

type Rofi struct {
	args []string
}

func NewRofi(args []string) *Rofi {
	return &Rofi{args: args}
}

func (r *Rofi) Name() string {
	return "rofi"
}

func (r *Rofi) Description() string {
	return "Use rofi launcher"
}

func (r *Rofi) IsAvailable() bool {
	return commandExists("rofi")
}

func (r *Rofi) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, r.args...)
	args = append(args, "-dmenu", "-p", prompt)
	return pipe("rofi", args, options)
}
