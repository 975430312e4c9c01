package systems

import (
	"github.com/gonewx/bulletprog/pkg/components"
	"github.com/gonewx/bulletprog/pkg/ecs"
)

// CollisionSystem 检测子弹与敌人、玩家与敌人的碰撞
type CollisionSystem struct {
	em    *ecs.EntityManager
	world *EnemyWorld

	// OnPlayerHit 玩家与敌人接触时调用，参数为接触点
	OnPlayerHit func(x, y float64)
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - world: 敌人查询，用于获取敌人句柄
//
// 返回:
//   - *CollisionSystem: 碰撞系统实例
func NewCollisionSystem(em *ecs.EntityManager, world *EnemyWorld) *CollisionSystem {
	return &CollisionSystem{em: em, world: world}
}

// checkAABBCollision 两个碰撞盒是否重叠
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	left1, top1, right1, bottom1 := col1.Bounds(pos1.X, pos1.Y)
	left2, top2, right2, bottom2 := col2.Bounds(pos2.X, pos2.Y)

	// 任一轴上没有重叠则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}

// Update 处理本帧所有碰撞
func (s *CollisionSystem) Update(dt float64) {
	enemies := s.activeEnemies()
	s.bulletsVsEnemies(enemies)
	s.playerVsEnemies()
}

// activeEnemies 未被击杀、未标记删除的敌人
func (s *CollisionSystem) activeEnemies() []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	out := ids[:0]
	for _, id := range ids {
		if s.enemyActive(id) {
			out = append(out, id)
		}
	}
	return out
}

func (s *CollisionSystem) enemyActive(id ecs.EntityID) bool {
	if s.em.IsMarkedForDestroy(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	return ok && !health.Killed
}

func (s *CollisionSystem) bulletsVsEnemies(enemies []ecs.EntityID) {
	bullets := ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	for _, bulletID := range bullets {
		bc, _ := ecs.GetComponent[*components.BulletComponent](s.em, bulletID)
		if !bc.Bullet.Alive() {
			continue
		}
		bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bulletID)
		bulletCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, bulletID)

		for _, enemyID := range enemies {
			// 前面的子弹可能已经击杀了这个敌人（爆炸、分裂）
			if !s.enemyActive(enemyID) {
				continue
			}
			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)
			enemyCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, enemyID)
			if !checkAABBCollision(bulletPos, bulletCol, enemyPos, enemyCol) {
				continue
			}

			bc.Bullet.OnEnemyContact(s.world.Handle(enemyID))
			if !bc.Bullet.Alive() {
				break
			}
		}
	}
}

func (s *CollisionSystem) playerVsEnemies() {
	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	for _, playerID := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
		if player.Hit {
			continue
		}
		playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
		playerCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, playerID)

		for _, enemyID := range s.activeEnemies() {
			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)
			enemyCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, enemyID)
			if checkAABBCollision(playerPos, playerCol, enemyPos, enemyCol) {
				player.Hit = true
				if s.OnPlayerHit != nil {
					s.OnPlayerHit(playerPos.X, playerPos.Y)
				}
				break
			}
		}
	}
}
