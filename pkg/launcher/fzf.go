package launcher

type Fzf struct {
	args []string
}

func NewFzf(args []string) *Fzf {
	return &Fzf{args: args}
}

func (f *Fzf) Name() string {
	return "fzf"
}

func (f *Fzf) Description() string {
	return "Use fzf launcher"
}

func (f *Fzf) IsAvailable() bool {
	return commandExists("fzf")
}

func (f *Fzf) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--prompt", prompt+"> ")
	return pipe("fzf", args, options)
}
