package access

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tourism-directory/internal/domain"
)

// policyFile - формат YAML-файла политики
type policyFile struct {
	DefaultEffect     string `yaml:"default_effect"`
	SignInRoute       string `yaml:"sign_in_route"`
	UnauthorizedRoute string `yaml:"unauthorized_route"`
	Rules             []struct {
		Route string   `yaml:"route"`
		Roles []string `yaml:"roles"`
	} `yaml:"rules"`
}

// LoadPolicyFile читает политику из YAML-файла
func LoadPolicyFile(path string) (*Policy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open policy file: %w", err)
	}
	defer f.Close()

	policy, err := DecodePolicy(f)
	if err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}
	return policy, nil
}

// DecodePolicy разбирает YAML-описание политики.
// Значения опций из файла перекрывают DefaultOptions.
func DecodePolicy(r io.Reader) (*Policy, error) {
	var pf policyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return nil, fmt.Errorf("decode policy: %w", err)
	}

	opts := DefaultOptions()
	effect, err := ParseEffect(pf.DefaultEffect)
	if err != nil {
		return nil, err
	}
	opts.DefaultEffect = effect

	if pf.SignInRoute != "" {
		route, err := domain.ParseRoute(pf.SignInRoute)
		if err != nil {
			return nil, fmt.Errorf("sign_in_route: %w", err)
		}
		opts.SignInRoute = route
	}
	if pf.UnauthorizedRoute != "" {
		route, err := domain.ParseRoute(pf.UnauthorizedRoute)
		if err != nil {
			return nil, fmt.Errorf("unauthorized_route: %w", err)
		}
		opts.UnauthorizedRoute = route
	}

	rules := make([]Rule, 0, len(pf.Rules))
	for _, raw := range pf.Rules {
		roles := make([]domain.Role, 0, len(raw.Roles))
		for _, name := range raw.Roles {
			role, err := domain.ParseRole(name)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", raw.Route, err)
			}
			roles = append(roles, role)
		}
		rules = append(rules, Rule{Route: domain.Route(raw.Route), Roles: roles})
	}

	return NewPolicy(rules, opts)
}

// LoadPolicy - политика из файла, если путь задан, иначе встроенная таблица
// с указанным эффектом по умолчанию. Эффект файла задаётся в самом файле.
func LoadPolicy(path, defaultEffect string) (*Policy, error) {
	if path != "" {
		return LoadPolicyFile(path)
	}

	effect, err := ParseEffect(defaultEffect)
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	opts.DefaultEffect = effect
	return DefaultPolicy(opts)
}
