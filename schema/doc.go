// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package schema 提供单 Agent 描述的字段级校验与 UI 表单 schema 生成。

# 概述

schema 包校验 types.AgentSpec 的平坦记录约束（必填字段、provider 枚举、
参数取值范围、工具声明），并为前端表单构建器生成对应的 JSON Schema。
工具的 parameters 声明本身也是 JSON Schema，通过 santhosh-tekuri/jsonschema
编译来发现畸形 schema。

# 核心函数

  - ValidateAgent   — 返回与 workflow.Validate 相同的 Result 形状
  - AgentFormSchema — 生成 UI 表单用 JSON Schema
*/
package schema
