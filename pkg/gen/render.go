// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2024 The arcdps plugin-sdk-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


package gen

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"
)

// OutputFile is the default name of the generated file.
const OutputFile = "zz_generated_arcdps.go"

const initializePath = symbolsPath + "initialize"

// Render writes the registration file for m. Symbol packages are only
// imported when one of their slots is configured, so the extras
// subscriber entry point is left out of plugins that do not use it.
func Render(m *Manifest, w io.Writer) error {
	plan, err := Plan(m)
	if err != nil {
		return err
	}

	pkg := m.Package
	if pkg == "" {
		pkg = "main"
	}
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by arcdps-gen. DO NOT EDIT.")

	body := []jen.Code{
		jen.Qual(initializePath, "SetInfo").Call(jen.Op(fmt.Sprintf("0x%x", m.Sig)), jen.Lit(m.Name), jen.Lit(m.Build)),
	}
	if m.Init != "" {
		body = append(body, jen.Qual(initializePath, "SetOnInit").Call(jen.Id(m.Init)))
	}
	if m.Release != "" {
		body = append(body, jen.Qual(initializePath, "SetOnRelease").Call(jen.Id(m.Release)))
	}
	for _, p := range plan {
		if p.Kind == KindAbsent {
			continue
		}
		path, name := p.Setter()
		body = append(body, jen.Qual(path, name).Call(jen.Id(p.Expr)))
	}

	f.Func().Id("init").Params().Block(body...)
	return f.Render(w)
}
