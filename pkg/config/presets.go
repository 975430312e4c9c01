package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/bulletprog/pkg/embedded"
	"github.com/gonewx/bulletprog/pkg/program"
)

// PresetsPath 嵌入的示例程序
const PresetsPath = "data/presets.yaml"

// PresetsConfig 示例程序表
//
// 配置文件位置: data/presets.yaml
type PresetsConfig struct {
	Presets map[string][]program.Spec `yaml:"presets"`
}

// ParsePresets 解析示例程序并检查每个节点
// 示例程序本身不要求语法合法（与玩家手动编辑一致），只要求节点在词表内
func ParsePresets(data []byte) (map[string]program.Program, error) {
	var cfg PresetsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	out := make(map[string]program.Program, len(cfg.Presets))
	for name, specs := range cfg.Presets {
		if name == "" {
			return nil, fmt.Errorf("preset with empty name")
		}
		p, err := program.FromSpecs(specs)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}

// LoadPresets 从文件系统加载示例程序
func LoadPresets(path string) (map[string]program.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets %s: %w", path, err)
	}
	return ParsePresets(data)
}

// LoadEmbeddedPresets 从嵌入资源加载示例程序
func LoadEmbeddedPresets() (map[string]program.Program, error) {
	data, err := embedded.ReadFile(PresetsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded presets: %w", err)
	}
	return ParsePresets(data)
}

// RegisterPresets 将示例程序按名称顺序注册到编辑上下文
func RegisterPresets(a *program.Authoring, presets map[string]program.Program) {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.RegisterPreset(name, presets[name])
	}
}
