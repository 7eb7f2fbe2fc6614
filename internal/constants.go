package internal

const (
	// 规则文件默认路径
	DefaultRulesPath = "rules.json"

	// 配置文件默认路径
	DefaultConfigPath = "~/.deskmanager/config.yaml"

	// 确认删除时要求输入的单词
	ConfirmWord = "yes"
)
