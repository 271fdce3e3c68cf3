package launcher

type Dmenu struct {
	args []string
}

func NewDmenu(args []string) *Dmenu {
	return &Dmenu{args: args}
}

func (d *Dmenu) Name() string {
	return "dmenu"
}

func (d *Dmenu) Description() string {
	return "Use dmenu launcher"
}

func (d *Dmenu) IsAvailable() bool {
	return commandExists("dmenu")
}

func (d *Dmenu) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, d.args...)
	args = append(args, "-p", prompt)
	return pipe("dmenu", args, options)
}
