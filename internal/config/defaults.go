package config

// Default returns the built-in configuration the packaged config.yml
// mirrors. The keyword vocabulary covers the neuroscience directions the
// tracker follows; primary terms are specific enough that one occurrence
// establishes relevance, secondary terms need corroboration.
func Default() Config {
	var cfg Config

	cfg.App.Port = 38471
	cfg.App.DataDir = "."

	cfg.Pipeline.IntervalSeconds = 3600
	cfg.Pipeline.MaxPostings = 100

	cfg.Keywords.Primary = []string{
		"超声神经调控", "神经电生理", "神经调控", "脑机接口", "神经界面",
	}
	cfg.Keywords.Secondary = []string{
		// 技术方法
		"电生理", "脑电图", "肌电图", "经颅磁刺激", "经颅超声", "深部脑刺激",
		"神经信号", "神经记录", "神经刺激", "在体记录", "膜片钳",
		// 应用领域
		"神经科学", "脑科学", "神经工程", "神经技术", "神经假体",
		"神经康复", "神经疾病", "认知科学", "计算神经科学",
		// 相关学科
		"生物医学工程", "神经生物学", "心理学", "精神病学",
	}
	cfg.Keywords.Weights = map[string]int{
		"超声神经调控": 10, "神经电生理": 9, "神经调控": 8,
		"脑机接口": 9, "神经界面": 8, "电生理": 7, "脑科学": 6,
		"神经工程": 7, "生物医学": 6, "信号处理": 5, "动物实验": 5,
	}

	cfg.Sources.Sciencenet.Enabled = true
	cfg.Sources.Sciencenet.SearchURL = "https://talent.sciencenet.cn/index.php?searchkey=神经科学&channel=all"
	cfg.Sources.Gaoxiaojob.Enabled = true
	cfg.Sources.Gaoxiaojob.ListingURL = "https://www.gaoxiaojob.com/zaozhi/neuroscience/"

	cfg.Sources.Mailbox.Folder = "INBOX"
	cfg.Sources.Mailbox.IMAPPort = 993

	cfg.Notify.SMTPPort = 587

	return cfg
}
