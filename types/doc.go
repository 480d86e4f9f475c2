// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package types 提供 AgentPort 的全局共享类型定义。

# 概述

types 是最底层的公共包，不依赖任何内部包，为 workflow、schema、adapters
等上层模块提供统一的类型契约。跨包共享的结构体、枚举和错误码均定义于此，
以避免循环依赖。

# 核心类型

  - AgentSpec         — 与具体平台无关的 Agent 描述（Provider / Model / Tools / Memory）
  - ToolSpec          — 工具声明（name + description + JSON Schema parameters）
  - Result[T]         — 统一校验结果（success + data 或 error.issues）
  - Issue             — 带路径标签的校验问题（path []string + message）
  - Error / ErrorCode — 结构化错误体系，含错误码与 cause 链
  - JSONSchema        — JSON Schema 定义与构建器（NewObjectSchema 等）

# 主要能力

  - 错误工具链：WrapError / GetErrorCode / IsErrorCode
  - 校验结果构造：OK / Fail / Issues 聚合
  - JSON Schema 构建：AddProperty / AddRequired / WithDescription 链式调用
*/
package types
