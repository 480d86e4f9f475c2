// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package langgraph 将已校验的工作流图翻译为 LangGraph 状态机格式。

# 概述

图被翻译为命名节点表 + 边列表 + 显式 entryPoint。所有已声明 Variable
合并进 state 描述（name → 类型与默认值），并附加两个隐式字段 input 与
output（string，默认空串）。每个节点的 next 按出边分类呈现为单后继、
并行数组或条件映射三种形式之一，并始终附带 memory 类型的 checkpoint
描述符（不依赖外部存储）。

# 入口

  - Mapper.MapWorkflow — 整图翻译
  - Mapper.MapAgent    — 单 Agent 翻译（无图场景）
*/
package langgraph
