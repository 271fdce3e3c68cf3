package launcher

type Bemenu struct {
	args []string
}

func NewBemenu(args []string) *Bemenu {
	return &Bemenu{args: args}
}

func (b *Bemenu) Name() string {
	return "bemenu"
}

func (b *Bemenu) Description() string {
	return "Use bemenu launcher"
}

func (b *Bemenu) IsAvailable() bool {
	return commandExists("bemenu")
}

func (b *Bemenu) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, b.args...)
	args = append(args, "-p", prompt)
	return pipe("bemenu", args, options)
}
