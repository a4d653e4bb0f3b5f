package model

// Post 生成的单条 LinkedIn 帖子
type Post struct {
	Hook string `json:"hook"` // 吸引注意力的开头（1-2 句）
	Body string `json:"body"` // 正文，段落之间以换行分隔
	CTA  string `json:"cta"`  // 结尾的行动号召
}

// Valid 三个字段都非空才算有效帖子
func (p Post) Valid() bool {
	return p.Hook != "" && p.Body != "" && p.CTA != ""
}
