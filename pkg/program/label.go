package program

// actionLabels 动作的展示名称
// key 包含种类，避免不同种类出现同名动作时互相覆盖
var actionLabels = map[Kind]map[Action]string{
	KindProperty: {
		ActionHoming:      "追踪",
		ActionPenetrate:   "穿透",
		ActionHighDamage:  "高威力",
		ActionPoison:      "持续伤害",
		ActionMagnetic:    "磁力",
		ActionShieldBreak: "破盾",
		ActionSlowEffect:  "减速",
	},
	KindWhen: {
		ActionImmediate:    "立即",
		ActionTimer1:       "1秒后",
		ActionTimer2:       "2秒后",
		ActionEnemyContact: "接触敌人时",
		ActionWallContact:  "接触墙壁时",
	},
	KindIf: {
		ActionEnemyNear: "敌人很近",
		ActionEnemyFar:  "敌人很远",
		ActionEnemyMany: "敌人3个以上",
		ActionNoEnemy:   "没有敌人",
	},
	KindDo: {
		ActionSplit:   "分裂",
		ActionExplode: "爆炸",
		ActionBounce:  "反弹",
		ActionSpeedUp: "加速",
		ActionDestroy: "消失",
	},
}

// Label 返回 (kind, action) 的展示名称，未登记的动作回退为原始 id
func Label(kind Kind, action Action) string {
	if labels, ok := actionLabels[kind]; ok {
		if label, ok := labels[action]; ok {
			return label
		}
	}
	return string(action)
}
