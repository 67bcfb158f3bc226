package result

//go:generate go run gen_outcomes.go

// Outcome 是服务可上报的全部结果（封闭枚举），每个值在 outcomeTable 里有固定的后缀和描述。
type Outcome uint8

// Valid 判断 o 是否在封闭集合内
func (o Outcome) Valid() bool { return o < outcomeCount }

// Suffix 结果码后缀（固定 4 位数字）
func (o Outcome) Suffix() string { return o.entry().Suffix }

// Message 面向调用方的描述，仅作提示
func (o Outcome) Message() string { return o.entry().Description }

// String 符号名，如 "DATA_NOT_FOUND"
func (o Outcome) String() string { return o.entry().Name }

// 越界值（只能通过显式类型转换得到）一律按 OutcomeUnknown 处理，保证工厂是全函数
func (o Outcome) entry() Entry {
	if !o.Valid() {
		return outcomeTable[OutcomeUnknown]
	}
	return outcomeTable[o]
}

// Outcomes 按声明顺序返回全部结果
func Outcomes() []Outcome {
	out := make([]Outcome, 0, outcomeCount)
	for o := Outcome(0); o < outcomeCount; o++ {
		out = append(out, o)
	}
	return out
}

// Lookup 按后缀查找（值比较），找不到返回 false
func Lookup(suffix string) (Outcome, bool) {
	i, ok := builtin.bySuffix[suffix]
	if !ok {
		return 0, false
	}
	return Outcome(i), true
}

// ParseOutcome 按符号名查找
func ParseOutcome(name string) (Outcome, bool) {
	i, ok := builtin.byName[name]
	if !ok {
		return 0, false
	}
	return Outcome(i), true
}

// Builtin 返回内置目录（只读）
func Builtin() *Catalog { return builtin }

// 进程启动即校验；重复后缀直接 panic，先于任何请求
var builtin = MustCatalog(outcomeTable[:]...)
