package main

import (
	"fmt"
	"os"

	"github.com/SAP-F-2025/surveyor-service/internal/models"
	"gopkg.in/yaml.v3"
)

// Script is the YAML description of a scripted administration
type Script struct {
	Label          string              `yaml:"label"`
	Instruments    []string            `yaml:"instruments"`
	Roster         []string            `yaml:"roster"`
	Scenario       string              `yaml:"scenario"`
	Answers        map[string][]string `yaml:"answers"`
	FallbackAnswer string              `yaml:"fallback_answer"`
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return &script, nil
}

func (s *Script) Request() *models.AdministrationRequest {
	return &models.AdministrationRequest{
		Label:          s.Label,
		Instruments:    s.Instruments,
		Roster:         s.Roster,
		Scenario:       s.Scenario,
		Answers:        s.Answers,
		FallbackAnswer: s.FallbackAnswer,
	}
}
