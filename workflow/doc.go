// Copyright (c) AgentPort Authors.
// Licensed under the MIT License.

/*
Package workflow 提供工作流图模型、结构化解析与图分析引擎。

# 概述

workflow 包定义了平台无关的工作流图（节点 / 连接 / 触发器 / 变量），
并提供三个纯函数形式的图分析算法与组合式校验器。图以扁平列表 + 字符串
id 引用表示，而非指针图，保证可直接序列化且不存在所有权环。

# 核心类型与函数

  - Graph / Node / Connection / Trigger / Variable — 图数据模型
  - GraphBuilder        — Fluent API 构建图（Build 时自动校验）
  - HasCycle            — DFS 环检测（O(V+E)，仅返回布尔）
  - TopologicalOrder    — Kahn 拓扑排序（有环时返回 nil）
  - DisconnectedNodes   — 零度节点检测（按声明顺序返回）
  - ClassifyFanOut      — 出边分类（Single / Parallel / Conditional）
  - EntryNode / Levels  — 入口解析与 BFS 分层（供 adapters 使用）
  - Validator.Validate  — 结构校验 + 环策略，返回 Result[*Graph]
  - FromJSON / FromYAML — 解析并校验序列化的图定义

# 设计约束

分析函数从不修改输入图；校验成功意味着所有连接端点可解析、所有 agent
节点携带恰好一种 agent 引用。分析函数对有环图保持容忍（返回事实而非
错误），环作为校验失败仅由 Validator 的策略层裁定。
*/
package workflow
