package program

// 校验失败原因（编辑界面直接展示）
const (
	ReasonEmpty        = "empty"
	ReasonMissingWhen  = "missing WHEN"
	ReasonMissingDo    = "missing DO"
	ReasonIllegalOrder = "illegal order"
)

// ValidationResult 语法校验结果
type ValidationResult struct {
	Valid  bool
	Reason string
}

// ValidationFailure 校验失败的错误形式
// 校验失败不会中断编辑，只在调用方需要 error 值时使用
type ValidationFailure struct {
	Reason string
}

func (e *ValidationFailure) Error() string {
	return "program validation failed: " + e.Reason
}

// Err 合法时返回 nil，否则返回 *ValidationFailure
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationFailure{Reason: r.Reason}
}

// Validate 判断程序是否可以发射
//
// PROPERTY 节点对流程透明，可出现在任意位置。其余节点中：
//   - 至少一个 WHEN 和一个 DO
//   - 无 IF 时：首个 WHEN 在首个 DO 之前
//   - 有 IF 时：首个 IF 可在首个 WHEN 之前或之后，但首个 DO 必须在两者之后
//
// 这是纯结构检查，不保证运行时一定会触发。
func Validate(p Program) ValidationResult {
	if len(p) == 0 {
		return ValidationResult{Reason: ReasonEmpty}
	}

	whenIdx, ifIdx, doIdx := -1, -1, -1
	flow := 0
	for _, n := range p {
		if n.kind == KindProperty {
			continue
		}
		switch n.kind {
		case KindWhen:
			if whenIdx < 0 {
				whenIdx = flow
			}
		case KindIf:
			if ifIdx < 0 {
				ifIdx = flow
			}
		case KindDo:
			if doIdx < 0 {
				doIdx = flow
			}
		}
		flow++
	}

	if whenIdx < 0 {
		return ValidationResult{Reason: ReasonMissingWhen}
	}
	if doIdx < 0 {
		return ValidationResult{Reason: ReasonMissingDo}
	}

	if ifIdx < 0 {
		if whenIdx < doIdx {
			return ValidationResult{Valid: true}
		}
		return ValidationResult{Reason: ReasonIllegalOrder}
	}

	if (whenIdx < ifIdx && ifIdx < doIdx) || (ifIdx < whenIdx && whenIdx < doIdx) {
		return ValidationResult{Valid: true}
	}
	return ValidationResult{Reason: ReasonIllegalOrder}
}

// Validate 校验程序
func (p Program) Validate() ValidationResult { return Validate(p) }
