package gen

import (
	"encoding/json"
	"text/template"
)

var funcs = template.FuncMap{
	"quote": quote,
}

var moduleTemplate = template.Must(template.New("module").Funcs(funcs).Parse(
	`{{if .GenerateComments}}// Code generated by microapp-routes. DO NOT EDIT.

{{end}}import React from 'react';
import { MicroApp } from {{quote .MicroAppImport}};

export const routes = {{.Routes}};
`))

var delegationTemplate = template.Must(template.New("delegation").Funcs(funcs).Parse(
	`({ match }) => {
  const { url } = match;
  const hostBase = {{quote .Base}};
  const runtimeMatchedBase = hostBase + (url.endsWith('/') ? url.substr(0, url.length - 1) : url);

  return React.createElement(MicroApp, {
    name: {{quote .AppName}},
    base: runtimeMatchedBase,
    history: {{quote .History}},
    settings: {{.Settings}},
  });
}`))

var placeholderTemplate = template.Must(template.New("placeholder").Funcs(funcs).Parse(
	`() => {
  if (process.env.NODE_ENV !== 'production') {
    console.log({{quote .Message}});
  }

  return React.createElement('div');
}`))

type moduleData struct {
	GenerateComments bool
	MicroAppImport   string
	Routes           string
}

type delegationData struct {
	AppName  string
	Base     string
	History  string
	Settings string
}

type placeholderData struct {
	Message string
}

// quote returns s as a double-quoted JavaScript string literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}

	return string(b)
}
